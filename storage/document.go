package storage

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/automaton"
)

// TransitionRecord запись перехода From -Input-> To.
// Пустое поле Input означает эпсилон-переход.
type TransitionRecord struct {
	From  int    `json:"from"`
	Input string `json:"input"`
	To    int    `json:"to"`
}

// NFADocument сериализуемое описание NFA.
type NFADocument struct {
	Start       int                       `json:"start"`
	Transitions []TransitionRecord        `json:"transitions"`
	Accept      map[automaton.State]string `json:"accept"`
}

// NewNFADocument строит документ по автомату nfa.
// Переходы упорядочены по (From, Input, To).
func NewNFADocument(nfa *automaton.NFA) *NFADocument {
	document := &NFADocument{
		Start:       int(nfa.Start),
		Transitions: make([]TransitionRecord, 0, len(nfa.Transitions)),
		Accept:      make(map[automaton.State]string, len(nfa.Accept)),
	}
	for state, label := range nfa.Accept {
		document.Accept[state] = label
	}

	for from, symbols := range nfa.Transitions {
		for symbol, targets := range symbols {
			input := ""
			if symbol != automaton.Epsilon {
				input = string(symbol)
			}
			for _, to := range targets {
				document.Transitions = append(document.Transitions, TransitionRecord{
					From:  int(from),
					Input: input,
					To:    int(to),
				})
			}
		}
	}
	sort.Slice(document.Transitions, func(i, j int) bool {
		left, right := document.Transitions[i], document.Transitions[j]
		if left.From != right.From {
			return left.From < right.From
		}
		if left.Input != right.Input {
			return left.Input < right.Input
		}
		return left.To < right.To
	})
	return document
}

// NFA восстанавливает автомат из документа.
func (d *NFADocument) NFA() (*automaton.NFA, error) {
	nfa := automaton.NewNFA(automaton.State(d.Start))
	for state, label := range d.Accept {
		nfa.Accept[state] = label
	}

	for i, record := range d.Transitions {
		if record.From < 0 || record.To < 0 {
			return nil, errors.Wrapf(ErrBadState, "transition %d", i)
		}
		symbol, err := parseSymbol(record.Input)
		if err != nil {
			return nil, errors.Wrapf(err, "transition %d", i)
		}
		nfa.AddTransition(automaton.State(record.From), symbol, automaton.State(record.To))
	}
	return nfa, nil
}

// DFADocument сериализуемое описание DFA.
type DFADocument struct {
	Start       int                       `json:"start"`
	Transitions []TransitionRecord        `json:"transitions"`
	Accept      map[automaton.State]string `json:"accept"`
}

// NewDFADocument строит документ по автомату dfa.
// Переходы упорядочены по (From, Input), поэтому документ одного
// автомата всегда сериализуется одинаково.
func NewDFADocument(dfa *automaton.DFA) *DFADocument {
	document := &DFADocument{
		Start:       int(dfa.Start),
		Transitions: make([]TransitionRecord, 0, len(dfa.Transitions)),
		Accept:      make(map[automaton.State]string, len(dfa.Accept)),
	}
	for state, label := range dfa.Accept {
		document.Accept[state] = label
	}

	for from, symbols := range dfa.Transitions {
		for symbol, to := range symbols {
			document.Transitions = append(document.Transitions, TransitionRecord{
				From:  int(from),
				Input: string(symbol),
				To:    int(to),
			})
		}
	}
	sort.Slice(document.Transitions, func(i, j int) bool {
		if document.Transitions[i].From != document.Transitions[j].From {
			return document.Transitions[i].From < document.Transitions[j].From
		}
		return document.Transitions[i].Input < document.Transitions[j].Input
	})
	return document
}

// DFA восстанавливает автомат из документа.
func (d *DFADocument) DFA() (*automaton.DFA, error) {
	dfa := automaton.NewDFA(automaton.State(d.Start))
	for state, label := range d.Accept {
		dfa.Accept[state] = label
	}

	for i, record := range d.Transitions {
		if record.From < 0 || record.To < 0 {
			return nil, errors.Wrapf(ErrBadState, "transition %d", i)
		}
		symbol, err := parseSymbol(record.Input)
		if err != nil {
			return nil, errors.Wrapf(err, "transition %d", i)
		}
		if symbol == automaton.Epsilon {
			return nil, errors.Wrapf(ErrBadSymbol, "transition %d: epsilon transition in DFA", i)
		}
		dfa.AddTransition(automaton.State(record.From), symbol, automaton.State(record.To))
	}
	return dfa, nil
}
