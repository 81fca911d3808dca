package storage

import (
	"encoding/xml"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/automaton"
)

// ErrNoInitialState в JFF-документе не отмечено стартовое состояние.
var ErrNoInitialState = errors.New("jff document has no initial state")

type jffState struct {
	ID      int       `xml:"id,attr"`
	Name    string    `xml:"name,attr"`
	Initial *struct{} `xml:"initial"`
	Final   *struct{} `xml:"final"`
}

type jffTransition struct {
	From int    `xml:"from"`
	To   int    `xml:"to"`
	Read string `xml:"read"`
}

type jffDocument struct {
	States      []jffState      `xml:"automaton>state"`
	Transitions []jffTransition `xml:"automaton>transition"`
}

// ReadJFF читает NFA из XML-файла редактора JFLAP.
// Метками допускающих состояний служат имена состояний, пустой тег read
// означает эпсилон-переход, классы [0-9], [a-z] и [A-Z] разворачиваются
// в переходы по каждому символу диапазона.
func ReadJFF(r io.Reader) (*automaton.NFA, error) {
	var document jffDocument
	if err := xml.NewDecoder(r).Decode(&document); err != nil {
		return nil, errors.Wrap(err, "can not decode jff document")
	}

	start := automaton.State(-1)
	accept := make(map[automaton.State]string)
	for _, state := range document.States {
		if state.Initial != nil && start == -1 {
			start = automaton.State(state.ID)
		}
		if state.Final != nil {
			accept[automaton.State(state.ID)] = state.Name
		}
	}
	if start == -1 {
		return nil, ErrNoInitialState
	}

	nfa := automaton.NewNFA(start)
	nfa.Accept = accept
	for i, transition := range document.Transitions {
		from := automaton.State(transition.From)
		to := automaton.State(transition.To)

		symbols, err := expandRead(transition.Read)
		if err != nil {
			return nil, errors.Wrapf(err, "transition %d", i)
		}
		for _, symbol := range symbols {
			nfa.AddTransition(from, symbol, to)
		}
	}
	return nfa, nil
}

// expandRead разворачивает содержимое тега read в список символов перехода.
func expandRead(read string) ([]rune, error) {
	switch read {
	case "":
		return []rune{automaton.Epsilon}, nil
	case "[0-9]":
		return runeRange('0', '9'), nil
	case "[a-z]":
		return runeRange('a', 'z'), nil
	case "[A-Z]":
		return runeRange('A', 'Z'), nil
	}

	if utf8.RuneCountInString(read) != 1 {
		return nil, errors.Wrapf(ErrBadSymbol, "got %q", read)
	}
	symbol, _ := utf8.DecodeRuneInString(read)
	return []rune{symbol}, nil
}

func runeRange(lo, hi rune) []rune {
	symbols := make([]rune, 0, hi-lo+1)
	for symbol := lo; symbol <= hi; symbol++ {
		symbols = append(symbols, symbol)
	}
	return symbols
}
