package automata

import (
	"github.com/pterm/pterm"

	"github.com/GDVFox/zigzin/client/common"
	"github.com/GDVFox/zigzin/client/lexclient"
)

// Список возможных команд.
const (
	ListCommand   common.Command = "list"
	GetCommand    common.Command = "get"
	CreateCommand common.Command = "new"
	DeleteCommand common.Command = "rm"
	RenderCommand common.Command = "render"
)

// HandleAutomata обрабатывает вызов automata.
func HandleAutomata(rawArgs []string) {
	if len(rawArgs) < 2 {
		pterm.Error.Printfln("Expected COMMAND, run 'zigzin %s help' for more information", lexclient.LexerNodeAddress)
		return
	}
	args := rawArgs[1:]

	var commandHelper common.CommandHelper
	switch common.Command(args[0]) {
	case ListCommand:
		commandHelper = NewListCommandHelper()
	case GetCommand:
		commandHelper = NewGetCommandHelper()
	case CreateCommand:
		commandHelper = NewCreateCommandHelper()
	case DeleteCommand:
		commandHelper = NewDeleteCommandHelper()
	case RenderCommand:
		commandHelper = NewRenderCommandHelper()
	default:
		pterm.Error.Printfln("Unknown command '%s', run 'zigzin %s help' for more information", args[0], lexclient.LexerNodeAddress)
		return
	}

	if err := commandHelper.Init(args); err != nil {
		pterm.Error.Printfln("Can not parse command flags: %s", err)
		pterm.Println()
		commandHelper.PrintHelp()
		return
	}
	commandHelper.Run()
}
