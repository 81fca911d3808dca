package automata

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/GDVFox/zigzin/automaton"
	"github.com/GDVFox/zigzin/client/lexclient"
	automataapi "github.com/GDVFox/zigzin/lexer_node/api/automata"
	"github.com/GDVFox/zigzin/storage"
	"github.com/pterm/pterm"
)

// CreateCommandHelper создание нового автомата.
// NFA задается либо CSV-таблицей переходов с JSON-файлом допускающих
// состояний, либо одним JFF-файлом редактора JFLAP.
type CreateCommandHelper struct {
	fs *flag.FlagSet

	help     bool
	name     string
	table    string
	states   string
	jff      string
	alphabet string
}

// NewCreateCommandHelper создает новый CreateCommandHelper
func NewCreateCommandHelper() *CreateCommandHelper {
	c := &CreateCommandHelper{
		fs: flag.NewFlagSet("new", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.name, "name", "n", "", "Name of a new automaton")
	c.fs.StringVarP(&c.table, "table", "t", "", "CSV file with NFA transition table")
	c.fs.StringVarP(&c.states, "states", "s", "", "JSON file with NFA accept states")
	c.fs.StringVarP(&c.jff, "jff", "j", "", "JFLAP file with NFA description")
	c.fs.StringVarP(&c.alphabet, "alphabet", "a", "", "Explicit alphabet, defaults to all transition symbols")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *CreateCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'zigzin %s automata new' determinizes given NFA and stores resulting DFA.", lexclient.LexerNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *CreateCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.name == "" {
		return errors.New("name can not be empty")
	}
	if c.jff == "" && c.table == "" {
		return errors.New("either table or jff file must be given")
	}
	if c.jff != "" && c.table != "" {
		return errors.New("table and jff files can not be used together")
	}
	return nil
}

// Run запускает команду
func (c *CreateCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	nfa, err := c.loadNFA()
	if err != nil {
		pterm.Error.Printfln("Can not load NFA: %s", err)
		return
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Creating automaton...")
	request := &automataapi.CreateAutomatonRequest{
		Name:     c.name,
		NFA:      storage.NewNFADocument(nfa),
		Alphabet: c.alphabet,
	}
	document, err := lexclient.LexerNode.CreateAutomaton(request)
	if err != nil {
		loadSpinner.Fail("Can not create automaton: ", err)
		return
	}
	loadSpinner.Success(pterm.Sprintf("Automaton created: %d states, %d transitions!",
		len(statesOf(document)), len(document.Transitions)))
}

func (c *CreateCommandHelper) loadNFA() (*automaton.NFA, error) {
	if c.jff != "" {
		f, err := os.Open(c.jff)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return storage.ReadJFF(f)
	}

	tableFile, err := os.Open(c.table)
	if err != nil {
		return nil, err
	}
	defer tableFile.Close()

	nfa, err := storage.ReadNFATable(tableFile)
	if err != nil {
		return nil, err
	}

	if c.states != "" {
		statesFile, err := os.Open(c.states)
		if err != nil {
			return nil, err
		}
		defer statesFile.Close()

		accept, err := storage.ReadAcceptStates(statesFile)
		if err != nil {
			return nil, err
		}
		nfa.Accept = accept
	}
	return nfa, nil
}

func statesOf(document *storage.DFADocument) map[int]struct{} {
	states := map[int]struct{}{document.Start: {}}
	for _, record := range document.Transitions {
		states[record.From] = struct{}{}
		states[record.To] = struct{}{}
	}
	return states
}
