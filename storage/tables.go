package storage

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/automaton"
)

// Возможные ошибки разбора описаний автоматов.
var (
	ErrBadSymbol = errors.New("input symbol must be a single code point")
	ErrBadState  = errors.New("state must be a non-negative integer")
	ErrBadRecord = errors.New("transition record must have 3 fields")
)

// Заголовок таблицы переходов.
var tableHeader = []string{"From", "Input", "To"}

// ReadNFATable читает таблицу переходов NFA из CSV вида "From,Input,To".
// Пустое поле Input означает эпсилон-переход, строки, начинающиеся с "//",
// пропускаются как комментарии. Стартовым считается состояние 0,
// допускающие состояния задаются отдельным файлом меток.
func ReadNFATable(r io.Reader) (*automaton.NFA, error) {
	nfa := automaton.NewNFA(0)
	err := readTable(r, func(from automaton.State, symbol rune, to automaton.State) {
		nfa.AddTransition(from, symbol, to)
	})
	if err != nil {
		return nil, err
	}
	return nfa, nil
}

// ReadDFATable читает таблицу переходов DFA из CSV вида "From,Input,To".
// Эпсилон-переходы в DFA недопустимы.
func ReadDFATable(r io.Reader) (*automaton.DFA, error) {
	dfa := automaton.NewDFA(0)
	err := readTable(r, func(from automaton.State, symbol rune, to automaton.State) {
		dfa.AddTransition(from, symbol, to)
	})
	if err != nil {
		return nil, err
	}

	for _, symbols := range dfa.Transitions {
		if _, ok := symbols[automaton.Epsilon]; ok {
			return nil, errors.Wrap(ErrBadSymbol, "epsilon transition in DFA table")
		}
	}
	return dfa, nil
}

func readTable(r io.Reader, add func(from automaton.State, symbol rune, to automaton.State)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "can not read transition record")
		}
		line++

		if len(record) != 0 && strings.HasPrefix(strings.TrimSpace(record[0]), "//") {
			continue
		}
		if isTableHeader(record) {
			continue
		}
		if len(record) != 3 {
			return errors.Wrapf(ErrBadRecord, "record %d", line)
		}

		from, err := parseState(record[0])
		if err != nil {
			return errors.Wrapf(err, "record %d", line)
		}
		to, err := parseState(record[2])
		if err != nil {
			return errors.Wrapf(err, "record %d", line)
		}
		symbol, err := parseSymbol(record[1])
		if err != nil {
			return errors.Wrapf(err, "record %d", line)
		}

		add(from, symbol, to)
	}
}

func isTableHeader(record []string) bool {
	if len(record) != len(tableHeader) {
		return false
	}
	for i, field := range record {
		if strings.TrimSpace(field) != tableHeader[i] {
			return false
		}
	}
	return true
}

func parseState(field string) (automaton.State, error) {
	state, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || state < 0 {
		return 0, errors.Wrapf(ErrBadState, "got %q", field)
	}
	return automaton.State(state), nil
}

func parseSymbol(field string) (rune, error) {
	if field == "" {
		return automaton.Epsilon, nil
	}
	if utf8.RuneCountInString(field) != 1 {
		return 0, errors.Wrapf(ErrBadSymbol, "got %q", field)
	}
	symbol, _ := utf8.DecodeRuneInString(field)
	return symbol, nil
}

// WriteDFATable записывает таблицу переходов DFA в CSV вида "From,Input,To".
// Записи упорядочены по (From, Input), поэтому две записи одного DFA
// дают одинаковый файл.
func WriteDFATable(w io.Writer, dfa *automaton.DFA) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(tableHeader); err != nil {
		return errors.Wrap(err, "can not write table header")
	}

	states := make([]automaton.State, 0, len(dfa.Transitions))
	for state := range dfa.Transitions {
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	for _, from := range states {
		symbols := make([]rune, 0, len(dfa.Transitions[from]))
		for symbol := range dfa.Transitions[from] {
			symbols = append(symbols, symbol)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		for _, symbol := range symbols {
			record := []string{
				strconv.Itoa(int(from)),
				string(symbol),
				strconv.Itoa(int(dfa.Transitions[from][symbol])),
			}
			if err := writer.Write(record); err != nil {
				return errors.Wrap(err, "can not write transition record")
			}
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "can not flush table")
}

// Alphabet возвращает отсортированный список различных символов,
// встречающихся в переходах n, без эпсилона.
func Alphabet(n *automaton.NFA) []rune {
	seen := make(map[rune]struct{})
	for _, symbols := range n.Transitions {
		for symbol := range symbols {
			if symbol != automaton.Epsilon {
				seen[symbol] = struct{}{}
			}
		}
	}

	alphabet := make([]rune, 0, len(seen))
	for symbol := range seen {
		alphabet = append(alphabet, symbol)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	return alphabet
}
