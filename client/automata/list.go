package automata

import (
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/zigzin/client/lexclient"
	"github.com/pterm/pterm"
)

// ListCommandHelper получение списка автоматов.
type ListCommandHelper struct {
	fs *flag.FlagSet

	help bool
}

// NewListCommandHelper возвращает новый ListCommandHelper.
func NewListCommandHelper() *ListCommandHelper {
	c := &ListCommandHelper{
		fs: flag.NewFlagSet("list", flag.ContinueOnError),
	}

	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// Init инициализирует состояние команды.
func (c *ListCommandHelper) Init(args []string) error {
	return c.fs.Parse(args)
}

// PrintHelp печатает сообщение с помощью по команде
func (c *ListCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'zigzin %s automata list' returns list of stored automata.", lexclient.LexerNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Run запускает комнаду.
func (c *ListCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Loading automata list...")
	automataList, err := lexclient.LexerNode.GetAutomataList()
	if err != nil {
		loadSpinner.Fail("Can not load automata list: ", err)
		return
	}

	loadSpinner.Success("Automata loaded:")
	pterm.Println()

	for _, name := range automataList.Automata {
		pterm.DefaultBasicText.Println(name)
	}
}
