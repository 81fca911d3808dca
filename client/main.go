package main

import (
	"os"

	"github.com/GDVFox/zigzin/client/about"
	"github.com/GDVFox/zigzin/client/automata"
	"github.com/GDVFox/zigzin/client/help"
	"github.com/GDVFox/zigzin/client/lexclient"
	"github.com/GDVFox/zigzin/client/tokens"
	"github.com/pterm/pterm"
)

// Category категория команд
type Category string

// Список возможных категорий.
const (
	AutomataCategory Category = "automata"
	TokensCategory   Category = "tokens"
	HelpCategory     Category = "help"
	AboutCategory    Category = "about"
)

func isCategory(arg string) bool {
	switch Category(arg) {
	case AutomataCategory, TokensCategory, HelpCategory, AboutCategory:
		return true
	}
	return false
}

func main() {
	pterm.DisableDebugMessages()
	pterm.Error.ShowLineNumber = false

	if len(os.Args) < 2 {
		help.HandleHelp()
		return
	}
	// Для категорий help и about вводить адрес lexer_node необязательно.
	switch Category(os.Args[1]) {
	case HelpCategory:
		help.HandleHelp()
		return
	case AboutCategory:
		about.HandleAbout()
		return
	default:
	}

	// Адрес можно не указывать, если он задан переменной окружения:
	// тогда первым аргументом сразу идет категория.
	cfg := lexclient.NewLexerNodeClientConfig()
	args := os.Args[1:]
	if !isCategory(args[0]) {
		cfg.Address = args[0]
		args = args[1:]
	}
	if len(args) == 0 {
		help.HandleHelp()
		return
	}
	lexclient.OpenLexerNodeClient(cfg)

	switch Category(args[0]) {
	case AutomataCategory:
		automata.HandleAutomata(args)
	case TokensCategory:
		tokens.HandleTokens(args)
	case HelpCategory:
		help.HandleHelp()
	case AboutCategory:
		about.HandleAbout()
	default:
		pterm.Error.Printfln("Unknown category '%s', run 'zigzin %s help' for more information", args[0], lexclient.LexerNodeAddress)
	}
}
