package storage

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/zigzin/automaton"
)

func TestNFADocumentRoundTrip(t *testing.T) {
	nfa := automaton.NewNFA(0)
	nfa.AddTransition(0, automaton.Epsilon, 1)
	nfa.AddTransition(0, 'a', 2)
	nfa.AddTransition(1, 'b', 2)
	nfa.Accept[2] = "AB"

	document := NewNFADocument(nfa)
	assert.Equal(t, []TransitionRecord{
		{From: 0, Input: "", To: 1},
		{From: 0, Input: "a", To: 2},
		{From: 1, Input: "b", To: 2},
	}, document.Transitions)

	restored, err := document.NFA()
	require.NoError(t, err)
	assert.Equal(t, nfa.Start, restored.Start)
	assert.Equal(t, nfa.Transitions, restored.Transitions)
	assert.Equal(t, nfa.Accept, restored.Accept)
}

func TestDFADocumentRoundTrip(t *testing.T) {
	dfa := automaton.NewDFA(0)
	dfa.AddTransition(0, 'b', 2)
	dfa.AddTransition(0, 'a', 1)
	dfa.AddTransition(1, 'a', 1)
	dfa.Accept[1] = "A"
	dfa.Accept[2] = "B"

	document := NewDFADocument(dfa)
	assert.Equal(t, []TransitionRecord{
		{From: 0, Input: "a", To: 1},
		{From: 0, Input: "b", To: 2},
		{From: 1, Input: "a", To: 1},
	}, document.Transitions)

	restored, err := document.DFA()
	require.NoError(t, err)
	assert.Equal(t, dfa.Transitions, restored.Transitions)
	assert.Equal(t, dfa.Accept, restored.Accept)
}

func TestDFADocumentRejectsEpsilon(t *testing.T) {
	document := &DFADocument{
		Start:       0,
		Transitions: []TransitionRecord{{From: 0, Input: "", To: 1}},
	}

	_, err := document.DFA()
	require.Error(t, err)
	assert.Equal(t, ErrBadSymbol, errors.Cause(err))
}

func TestDocumentRejectsBadStates(t *testing.T) {
	nfaDocument := &NFADocument{
		Transitions: []TransitionRecord{{From: -1, Input: "a", To: 0}},
	}
	_, err := nfaDocument.NFA()
	assert.Equal(t, ErrBadState, errors.Cause(err))

	dfaDocument := &DFADocument{
		Transitions: []TransitionRecord{{From: 0, Input: "a", To: -5}},
	}
	_, err = dfaDocument.DFA()
	assert.Equal(t, ErrBadState, errors.Cause(err))
}
