package storage

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/automaton"
)

// ErrBadStatesFile файл допускающих состояний имеет неожиданную структуру.
var ErrBadStatesFile = errors.New("malformed accept states file")

// ReadAcceptStates читает отображение допускающих состояний в метки
// из JSON вида [[state, label], ...].
func ReadAcceptStates(r io.Reader) (map[automaton.State]string, error) {
	var records [][]json.RawMessage
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "can not decode accept states")
	}

	accept := make(map[automaton.State]string, len(records))
	for i, record := range records {
		if len(record) != 2 {
			return nil, errors.Wrapf(ErrBadStatesFile, "record %d: expected [state, label] pair", i)
		}

		var state int
		if err := json.Unmarshal(record[0], &state); err != nil || state < 0 {
			return nil, errors.Wrapf(ErrBadStatesFile, "record %d: bad state", i)
		}
		var label string
		if err := json.Unmarshal(record[1], &label); err != nil {
			return nil, errors.Wrapf(ErrBadStatesFile, "record %d: bad label", i)
		}

		accept[automaton.State(state)] = label
	}
	return accept, nil
}

// WriteAcceptStates записывает отображение допускающих состояний в метки
// в JSON вида [[state, label], ...] в порядке возрастания состояний.
func WriteAcceptStates(w io.Writer, accept map[automaton.State]string) error {
	states := make([]automaton.State, 0, len(accept))
	for state := range accept {
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	records := make([][]interface{}, 0, len(states))
	for _, state := range states {
		records = append(records, []interface{}{int(state), accept[state]})
	}
	return errors.Wrap(json.NewEncoder(w).Encode(records), "can not encode accept states")
}

// StatesTypes документ с типами состояний NFA:
// стартовые состояния и допускающие состояния с метками.
type StatesTypes struct {
	Initial []automaton.State
	Final   map[automaton.State]string
}

// ReadStatesTypes читает документ вида
// {"initial": [...], "final": [[state, label], ...]}.
func ReadStatesTypes(r io.Reader) (*StatesTypes, error) {
	var document struct {
		Initial []int               `json:"initial"`
		Final   [][]json.RawMessage `json:"final"`
	}
	if err := json.NewDecoder(r).Decode(&document); err != nil {
		return nil, errors.Wrap(err, "can not decode states types")
	}

	types := &StatesTypes{
		Initial: make([]automaton.State, 0, len(document.Initial)),
		Final:   make(map[automaton.State]string, len(document.Final)),
	}
	for _, state := range document.Initial {
		if state < 0 {
			return nil, errors.Wrap(ErrBadStatesFile, "negative initial state")
		}
		types.Initial = append(types.Initial, automaton.State(state))
	}

	for i, record := range document.Final {
		if len(record) != 2 {
			return nil, errors.Wrapf(ErrBadStatesFile, "final record %d: expected [state, label] pair", i)
		}

		var state int
		if err := json.Unmarshal(record[0], &state); err != nil || state < 0 {
			return nil, errors.Wrapf(ErrBadStatesFile, "final record %d: bad state", i)
		}
		var label string
		if err := json.Unmarshal(record[1], &label); err != nil {
			return nil, errors.Wrapf(ErrBadStatesFile, "final record %d: bad label", i)
		}

		types.Final[automaton.State(state)] = label
	}
	return types, nil
}
