package tokens

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/GDVFox/zigzin/automaton"
	"github.com/GDVFox/zigzin/client/lexclient"
	"github.com/GDVFox/zigzin/recognizer"
	"github.com/GDVFox/zigzin/storage"
	"github.com/pterm/pterm"
)

// ScanCommandHelper токенизация входных файлов.
// Автомат либо берется с lexer_node по имени, либо загружается локально
// из CSV-таблицы переходов и JSON-файла допускающих состояний.
type ScanCommandHelper struct {
	fs *flag.FlagSet

	help      bool
	automaton string
	table     string
	states    string

	files []string
}

// NewScanCommandHelper создает новый ScanCommandHelper
func NewScanCommandHelper() *ScanCommandHelper {
	c := &ScanCommandHelper{
		fs: flag.NewFlagSet("scan", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.automaton, "automaton", "a", "", "Name of the stored automaton")
	c.fs.StringVarP(&c.table, "table", "t", "", "CSV file with DFA transition table")
	c.fs.StringVarP(&c.states, "states", "s", "", "JSON file with DFA accept states")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")

	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *ScanCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Printfln("Command 'zigzin %s tokens scan' splits given files into tokens.", lexclient.LexerNodeAddress)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *ScanCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.automaton == "" && c.table == "" {
		return errors.New("either automaton name or table file must be given")
	}
	if c.automaton != "" && c.table != "" {
		return errors.New("automaton name and table file can not be used together")
	}
	if c.table != "" && c.states == "" {
		return errors.New("states file must be given with table file")
	}

	// Первый аргумент это имя команды, дальше идут входные файлы.
	if len(c.fs.Args()) < 2 {
		return errors.New("at least one input file must be given")
	}
	c.files = c.fs.Args()[1:]
	return nil
}

// Run запускает команду
func (c *ScanCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	var dfa *automaton.DFA
	if c.table != "" {
		var err error
		dfa, err = c.loadDFA()
		if err != nil {
			pterm.Error.Printfln("Can not load automaton: %s", err)
			return
		}
	}

	loadSpinner, _ := pterm.DefaultSpinner.Start("Scanning files...")

	results := make([][]*recognizer.Token, len(c.files))
	var wg errgroup.Group
	for i, file := range c.files {
		i, file := i, file
		wg.Go(func() error {
			text, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			if dfa != nil {
				tokens, err := recognizer.Tokenize(dfa, string(text))
				if err != nil {
					return err
				}
				results[i] = tokens
				return nil
			}

			response, err := lexclient.LexerNode.Tokenize(c.automaton, text)
			if err != nil {
				return err
			}
			results[i] = response.Tokens
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		loadSpinner.Fail("Can not scan files: ", err)
		return
	}
	loadSpinner.Success("Files scanned!")
	pterm.Println()

	for i, file := range c.files {
		pterm.DefaultSection.Println(file)
		printTokens(results[i])
	}
}

func (c *ScanCommandHelper) loadDFA() (*automaton.DFA, error) {
	tableFile, err := os.Open(c.table)
	if err != nil {
		return nil, err
	}
	defer tableFile.Close()

	dfa, err := storage.ReadDFATable(tableFile)
	if err != nil {
		return nil, err
	}

	statesFile, err := os.Open(c.states)
	if err != nil {
		return nil, err
	}
	defer statesFile.Close()

	accept, err := storage.ReadAcceptStates(statesFile)
	if err != nil {
		return nil, err
	}
	dfa.Accept = accept
	return dfa, nil
}

func printTokens(tokens []*recognizer.Token) {
	tableData := pterm.TableData{{"Domain", "Lexeme", "Coords"}}
	for _, token := range tokens {
		coords := pterm.Sprintf("(%d, %d)-(%d, %d)",
			token.Coords.Starting.Line, token.Coords.Starting.Pos,
			token.Coords.Ending.Line, token.Coords.Ending.Pos)
		tableData = append(tableData, []string{token.Domain, token.Lexeme, coords})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
