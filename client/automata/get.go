package automata

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/GDVFox/zigzin/automaton"
	"github.com/GDVFox/zigzin/client/lexclient"
	"github.com/GDVFox/zigzin/storage"
	"github.com/pterm/pterm"
)

// GetCommandHelper получение конкретного автомата.
type GetCommandHelper struct {
	fs *flag.FlagSet

	help      bool
	name      string
	tableOut  string
	statesOut string
}

// NewGetCommandHelper создает новый GetCommandHelper
func NewGetCommandHelper() *GetCommandHelper {
	c := &GetCommandHelper{
		fs: flag.NewFlagSet("get", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the automaton to load")
	c.fs.StringVarP(&c.tableOut, "table-out", "o", "", "Output CSV file for the transition table")
	c.fs.StringVarP(&c.statesOut, "states-out", "s", "", "Output JSON file for the accept states")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *GetCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'zigzin %s automata get' returns transition table of specified automaton.", lexclient.LexerNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *GetCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.name == "" {
		return errors.New("name can not be empty")
	}

	return nil
}

// Run запускает команду
func (c *GetCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Loading automaton...")
	document, err := lexclient.LexerNode.GetAutomaton(c.name)
	if err != nil {
		loadSpinner.Fail("Can not get automaton: ", err)
		return
	}

	dfa, err := document.DFA()
	if err != nil {
		loadSpinner.Fail("Can not decode automaton: ", err)
		return
	}
	loadSpinner.Success("Automaton loaded!")

	if c.tableOut != "" {
		if err := writeTable(c.tableOut, dfa); err != nil {
			pterm.Error.Printfln("Can not write transition table: %s", err)
			return
		}
	}
	if c.statesOut != "" {
		if err := writeStates(c.statesOut, dfa); err != nil {
			pterm.Error.Printfln("Can not write accept states: %s", err)
			return
		}
	}
	if c.tableOut != "" || c.statesOut != "" {
		return
	}

	tableData := pterm.TableData{{"From", "Input", "To"}}
	for _, record := range document.Transitions {
		tableData = append(tableData, []string{
			pterm.Sprintf("%d", record.From),
			record.Input,
			pterm.Sprintf("%d", record.To),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func writeTable(filename string, dfa *automaton.DFA) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return storage.WriteDFATable(f, dfa)
}

func writeStates(filename string, dfa *automaton.DFA) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return storage.WriteAcceptStates(f, dfa.Accept)
}
