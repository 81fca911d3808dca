package help

import "github.com/pterm/pterm"

// HandleHelp выводит сообщение с помощью.
func HandleHelp() {
	pterm.DisableColor()
	pterm.DefaultBasicText.Printfln("Usage: zigzin [ADDRESS] CATERGORY COMMAND [OPTIONS]")
	pterm.Println()
	pterm.DefaultBasicText.Printfln("NFA to DFA conversion and tokenizing tool")
	pterm.Println()
	pterm.Println("ADDRESS means address of lexer_node in format <host>[:port],")
	pterm.Println("may be omitted if ZIGZIN_ADDRESS environment variable is set")

	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"CATEGORY", "COMMAND", "Description"},
		{"automata", "", "Managing a list of automata"},
		{"", "list", "Returns list of stored automata"},
		{"", "get", "Returns transition table of specified automaton"},
		{"", "new", "Determinizes given NFA and stores resulting DFA"},
		{"", "rm", "Removes specified automaton"},
		{"", "render", "Returns SVG image of specified automaton"},
		{"tokens", "", "Tokenizing input files"},
		{"", "scan", "Splits given files into tokens"},
		{"help", "", "Prints help message"},
	}).Render()
	pterm.Println()
	pterm.DefaultBasicText.Printfln("Use 'zigzin ADDRESS CATERGORY COMMAND --help' to see command [OPTIONS]")

	pterm.EnableColor()
}
