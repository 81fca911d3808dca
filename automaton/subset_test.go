package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func runDFA(dfa *DFA, input string) bool {
	state := dfa.Start
	for _, symbol := range input {
		next, ok := dfa.Next(state, symbol)
		if !ok {
			return false
		}
		state = next
	}
	_, ok := dfa.Accept[state]
	return ok
}

// NFA для языка (a|b)*abb, классический пример из книги дракона.
func newABBNFA() *NFA {
	nfa := NewNFA(0)
	nfa.AddTransition(0, Epsilon, 1)
	nfa.AddTransition(0, Epsilon, 7)
	nfa.AddTransition(1, Epsilon, 2)
	nfa.AddTransition(1, Epsilon, 4)
	nfa.AddTransition(2, 'a', 3)
	nfa.AddTransition(4, 'b', 5)
	nfa.AddTransition(3, Epsilon, 6)
	nfa.AddTransition(5, Epsilon, 6)
	nfa.AddTransition(6, Epsilon, 1)
	nfa.AddTransition(6, Epsilon, 7)
	nfa.AddTransition(7, 'a', 8)
	nfa.AddTransition(8, 'b', 9)
	nfa.AddTransition(9, 'b', 10)
	nfa.Accept[10] = "ABB"
	return nfa
}

func TestDeterminizeLanguage(t *testing.T) {
	dfa := Determinize(newABBNFA(), []rune{'a', 'b'})

	accepted := []string{"abb", "aabb", "babb", "ababb", "abababb", "bbbabb"}
	for _, input := range accepted {
		assert.True(t, runDFA(dfa, input), "expected to accept %q", input)
	}

	rejected := []string{"", "a", "ab", "abba", "bba", "abab", "c"}
	for _, input := range rejected {
		assert.False(t, runDFA(dfa, input), "expected to reject %q", input)
	}
}

func TestDeterminizeDeterministic(t *testing.T) {
	first := Determinize(newABBNFA(), []rune{'b', 'a'})
	second := Determinize(newABBNFA(), []rune{'a', 'b'})

	assert.Equal(t, first.Transitions, second.Transitions)
	assert.Equal(t, first.Accept, second.Accept)
}

func TestDeterminizeNumbering(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'a', 1)
	nfa.AddTransition(0, 'b', 2)
	nfa.AddTransition(1, 'a', 1)
	nfa.Accept[2] = "B"

	dfa := Determinize(nfa, []rune{'b', 'a'})

	// Обход в ширину при возрастающем порядке алфавита:
	// {0} получает номер 0, {1} обнаруживается по 'a' раньше, чем {2} по 'b'.
	assert.Equal(t, State(0), dfa.Start)
	assert.Equal(t, State(1), dfa.Transitions[0]['a'])
	assert.Equal(t, State(2), dfa.Transitions[0]['b'])
	assert.Equal(t, State(1), dfa.Transitions[1]['a'])
	assert.Equal(t, map[State]string{2: "B"}, dfa.Accept)
}

func TestDeterminizeLabelJoin(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'c', 1)
	nfa.AddTransition(1, Epsilon, 3)
	nfa.AddTransition(1, Epsilon, 5)
	nfa.Accept[3] = "X"
	nfa.Accept[5] = "Y"

	dfa := Determinize(nfa, []rune{'c'})

	next, ok := dfa.Next(0, 'c')
	assert.True(t, ok)
	assert.Equal(t, "X, Y", dfa.Accept[next])
}

func TestDeterminizeLabelJoinKeepsDuplicates(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'c', 1)
	nfa.AddTransition(0, 'c', 2)
	nfa.Accept[1] = "X"
	nfa.Accept[2] = "X"

	dfa := Determinize(nfa, []rune{'c'})

	next, ok := dfa.Next(0, 'c')
	assert.True(t, ok)
	assert.Equal(t, "X, X", dfa.Accept[next])
}

func TestDeterminizeAcceptingStart(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, Epsilon, 1)
	nfa.Accept[1] = "EMPTY"

	dfa := Determinize(nfa, []rune{'a'})
	assert.Equal(t, "EMPTY", dfa.Accept[0])
	assert.Empty(t, dfa.Transitions)
}

func TestDeterminizeNoAcceptStates(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'a', 1)
	nfa.AddTransition(1, 'a', 0)

	dfa := Determinize(nfa, []rune{'a'})
	assert.Empty(t, dfa.Accept)
	assert.False(t, runDFA(dfa, "aa"))
}

func TestDeterminizeEmptyNFA(t *testing.T) {
	nfa := NewNFA(0)
	nfa.Accept[0] = "START"

	dfa := Determinize(nfa, []rune{'a', 'b'})
	assert.Equal(t, "START", dfa.Accept[0])
	assert.Empty(t, dfa.Transitions)
	assert.True(t, runDFA(dfa, ""))
	assert.False(t, runDFA(dfa, "a"))
}

func TestDeterminizeUnusedAlphabetSymbols(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'a', 1)
	nfa.Accept[1] = "A"

	dfa := Determinize(nfa, []rune{'a', 'x', 'y', 'z'})
	assert.True(t, runDFA(dfa, "a"))
	_, ok := dfa.Next(0, 'x')
	assert.False(t, ok)
}

func TestDeterminizeAlphabetIsAuthority(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'a', 1)
	nfa.AddTransition(0, 'b', 2)
	nfa.Accept[1] = "A"
	nfa.Accept[2] = "B"

	// 'b' не входит в алфавит, переход по нему не строится.
	dfa := Determinize(nfa, []rune{'a'})
	assert.True(t, runDFA(dfa, "a"))
	assert.False(t, runDFA(dfa, "b"))
}
