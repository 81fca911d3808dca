package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// Epsilon метка эпсилон-перехода. Не является допустимой кодовой точкой,
// поэтому может храниться в тех же таблицах переходов, что и обычные символы.
const Epsilon rune = -1

// State идентификатор состояния автомата.
type State int

// StateSet множество состояний автомата.
type StateSet map[State]struct{}

// NewStateSet создает StateSet из переданных состояний.
func NewStateSet(states ...State) StateSet {
	set := make(StateSet, len(states))
	for _, state := range states {
		set.Add(state)
	}
	return set
}

// Add добавляет состояние state в множество.
func (s StateSet) Add(state State) {
	s[state] = struct{}{}
}

// Contains возвращает true, если state лежит в множестве.
func (s StateSet) Contains(state State) bool {
	_, ok := s[state]
	return ok
}

// Sorted возвращает состояния множества в порядке возрастания номеров.
func (s StateSet) Sorted() []State {
	states := make([]State, 0, len(s))
	for state := range s {
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// Key возвращает каноническое представление множества,
// не зависящее от порядка добавления состояний.
// Используется для дедупликации множеств при построении подмножеств.
func (s StateSet) Key() string {
	b := &strings.Builder{}
	for i, state := range s.Sorted() {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(state)))
	}
	return b.String()
}

// NFA недетерминированный конечный автомат с эпсилон-переходами.
// Переходы хранятся двухуровневой таблицей состояние -> символ -> состояния.
// Accept отображает допускающие состояния в их лексические метки.
type NFA struct {
	Transitions map[State]map[rune][]State
	Start       State
	Accept      map[State]string
}

// NewNFA создает пустой NFA со стартовым состоянием start.
func NewNFA(start State) *NFA {
	return &NFA{
		Transitions: make(map[State]map[rune][]State),
		Start:       start,
		Accept:      make(map[State]string),
	}
}

// AddTransition добавляет переход из from в to по символу symbol.
// Для эпсилон-перехода передается Epsilon.
func (n *NFA) AddTransition(from State, symbol rune, to State) {
	symbols, ok := n.Transitions[from]
	if !ok {
		symbols = make(map[rune][]State)
		n.Transitions[from] = symbols
	}
	symbols[symbol] = append(symbols[symbol], to)
}

// DFA детерминированный конечный автомат.
// Таблица переходов частичная: отсутствие записи означает,
// что по данной паре (состояние, символ) перехода нет.
type DFA struct {
	Transitions map[State]map[rune]State
	Start       State
	Accept      map[State]string
}

// NewDFA создает пустой DFA со стартовым состоянием start.
func NewDFA(start State) *DFA {
	return &DFA{
		Transitions: make(map[State]map[rune]State),
		Start:       start,
		Accept:      make(map[State]string),
	}
}

// AddTransition добавляет переход из from в to по символу symbol.
func (d *DFA) AddTransition(from State, symbol rune, to State) {
	symbols, ok := d.Transitions[from]
	if !ok {
		symbols = make(map[rune]State)
		d.Transitions[from] = symbols
	}
	symbols[symbol] = to
}

// Next возвращает состояние, в которое осуществляется переход
// из state по символу symbol. Второе значение false, если переход не задан.
func (d *DFA) Next(state State, symbol rune) (State, bool) {
	next, ok := d.Transitions[state][symbol]
	return next, ok
}

// EpsilonClosure возвращает наименьшее надмножество states,
// замкнутое по эпсилон-переходам. Обход произвольного графа
// эпсилон-переходов, циклы допустимы.
func EpsilonClosure(n *NFA, states StateSet) StateSet {
	closure := make(StateSet, len(states))
	stack := make([]State, 0, len(states))
	for state := range states {
		closure.Add(state)
		stack = append(stack, state)
	}

	for len(stack) != 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range n.Transitions[state][Epsilon] {
			if !closure.Contains(next) {
				closure.Add(next)
				stack = append(stack, next)
			}
		}
	}
	return closure
}

// Move возвращает объединение прямых, без эпсилон-замыкания,
// переходов из состояний states по символу symbol.
func Move(n *NFA, states StateSet, symbol rune) StateSet {
	result := make(StateSet)
	for state := range states {
		for _, next := range n.Transitions[state][symbol] {
			result.Add(next)
		}
	}
	return result
}
