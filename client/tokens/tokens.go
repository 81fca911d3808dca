package tokens

import (
	"github.com/pterm/pterm"

	"github.com/GDVFox/zigzin/client/common"
	"github.com/GDVFox/zigzin/client/lexclient"
)

// Список возможных команд.
const (
	ScanCommand common.Command = "scan"
)

// HandleTokens обрабатывает вызов tokens.
func HandleTokens(rawArgs []string) {
	if len(rawArgs) < 2 {
		pterm.Error.Printfln("Expected COMMAND, run 'zigzin %s help' for more information", lexclient.LexerNodeAddress)
		return
	}
	args := rawArgs[1:]

	var commandHelper common.CommandHelper
	switch common.Command(args[0]) {
	case ScanCommand:
		commandHelper = NewScanCommandHelper()
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
