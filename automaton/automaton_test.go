package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSetKey(t *testing.T) {
	first := NewStateSet(7, 1, 4)
	second := NewStateSet(4, 7, 1)

	assert.Equal(t, "1,4,7", first.Key())
	assert.Equal(t, first.Key(), second.Key())
	assert.NotEqual(t, first.Key(), NewStateSet(1, 4).Key())
	assert.Equal(t, "", NewStateSet().Key())
}

func TestEpsilonClosureSimple(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, Epsilon, 1)
	nfa.AddTransition(1, Epsilon, 2)
	nfa.AddTransition(2, 'a', 3)

	closure := EpsilonClosure(nfa, NewStateSet(0))
	assert.Equal(t, []State{0, 1, 2}, closure.Sorted())
}

func TestEpsilonClosureCycle(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, Epsilon, 1)
	nfa.AddTransition(1, Epsilon, 2)
	nfa.AddTransition(2, Epsilon, 0)

	closure := EpsilonClosure(nfa, NewStateSet(1))
	assert.Equal(t, []State{0, 1, 2}, closure.Sorted())
}

func TestEpsilonClosureMonotone(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, Epsilon, 3)
	nfa.AddTransition(5, 'x', 6)

	set := NewStateSet(0, 5)
	closure := EpsilonClosure(nfa, set)
	for state := range set {
		assert.True(t, closure.Contains(state))
	}
}

func TestEpsilonClosureIdempotent(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, Epsilon, 1)
	nfa.AddTransition(1, Epsilon, 4)
	nfa.AddTransition(2, Epsilon, 1)
	nfa.AddTransition(4, 'b', 2)

	closure := EpsilonClosure(nfa, NewStateSet(0, 2))
	again := EpsilonClosure(nfa, closure)
	assert.Equal(t, closure.Sorted(), again.Sorted())
}

func TestMove(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'a', 1)
	nfa.AddTransition(0, 'a', 2)
	nfa.AddTransition(1, 'a', 3)
	nfa.AddTransition(1, 'b', 4)

	moved := Move(nfa, NewStateSet(0, 1), 'a')
	assert.Equal(t, []State{1, 2, 3}, moved.Sorted())
}

func TestMoveEmpty(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'a', 1)

	moved := Move(nfa, NewStateSet(0), 'z')
	assert.Empty(t, moved)

	moved = Move(nfa, NewStateSet(42), 'a')
	assert.Empty(t, moved)
}

func TestMoveIgnoresEpsilon(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'a', 1)
	nfa.AddTransition(1, Epsilon, 2)

	moved := Move(nfa, NewStateSet(0), 'a')
	assert.Equal(t, []State{1}, moved.Sorted())
}
