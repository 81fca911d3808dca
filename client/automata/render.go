package automata

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/GDVFox/zigzin/client/lexclient"
	"github.com/pterm/pterm"
)

// RenderCommandHelper получение изображения графа переходов автомата.
type RenderCommandHelper struct {
	fs *flag.FlagSet

	help bool
	name string
	out  string
}

// NewRenderCommandHelper создает новый RenderCommandHelper
func NewRenderCommandHelper() *RenderCommandHelper {
	c := &RenderCommandHelper{
		fs: flag.NewFlagSet("render", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the automaton to render")
	c.fs.StringVarP(&c.out, "out", "o", "", "Output SVG file")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *RenderCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'zigzin %s automata render' returns SVG image of specified automaton.", lexclient.LexerNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *RenderCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.name == "" {
		return errors.New("name can not be empty")
	}
	if c.out == "" {
		return errors.New("out can not be empty")
	}

	return nil
}

// Run запускает команду
func (c *RenderCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Rendering automaton...")
	graphImg, err := lexclient.LexerNode.RenderAutomaton(c.name)
	if err != nil {
		loadSpinner.Fail("Can not render automaton: ", err)
		return
	}

	if err := os.WriteFile(c.out, graphImg, 0o644); err != nil {
		loadSpinner.Fail("Can not write image: ", err)
		return
	}
	loadSpinner.Success("Automaton rendered!")
}
