package automata

import (
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/GDVFox/zigzin/client/lexclient"
	"github.com/pterm/pterm"
)

// DeleteCommandHelper удаление автомата.
type DeleteCommandHelper struct {
	fs *flag.FlagSet

	help bool
	name string
}

// NewDeleteCommandHelper создает новый DeleteCommandHelper
func NewDeleteCommandHelper() *DeleteCommandHelper {
	c := &DeleteCommandHelper{
		fs: flag.NewFlagSet("rm", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the automaton to remove")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *DeleteCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'zigzin %s automata rm' removes specified automaton.", lexclient.LexerNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *DeleteCommandHelper) Init(args []string) error {
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
func (c *DeleteCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Removing automaton...")
	if err := lexclient.LexerNode.DeleteAutomaton(c.name); err != nil {
		loadSpinner.Fail("Can not remove automaton: ", err)
		return
	}
	loadSpinner.Success("Automaton removed!")
}
