package storage

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/zigzin/automaton"
)

const simpleJFF = `<?xml version="1.0" encoding="UTF-8"?>
<structure>
	<type>fa</type>
	<automaton>
		<state id="0" name="q0"><initial/></state>
		<state id="1" name="ID"><final/></state>
		<transition><from>0</from><to>1</to><read>a</read></transition>
		<transition><from>1</from><to>1</to><read></read></transition>
	</automaton>
</structure>`

func TestReadJFF(t *testing.T) {
	nfa, err := ReadJFF(strings.NewReader(simpleJFF))
	require.NoError(t, err)

	assert.Equal(t, automaton.State(0), nfa.Start)
	assert.Equal(t, map[automaton.State]string{1: "ID"}, nfa.Accept)
	assert.Equal(t, []automaton.State{1}, nfa.Transitions[0]['a'])
	assert.Equal(t, []automaton.State{1}, nfa.Transitions[1][automaton.Epsilon])
}

func TestReadJFFExpandsClasses(t *testing.T) {
	jff := `<structure><automaton>
		<state id="0" name="q0"><initial/></state>
		<state id="1" name="NUM"><final/></state>
		<transition><from>0</from><to>1</to><read>[0-9]</read></transition>
	</automaton></structure>`

	nfa, err := ReadJFF(strings.NewReader(jff))
	require.NoError(t, err)

	for symbol := '0'; symbol <= '9'; symbol++ {
		assert.Equal(t, []automaton.State{1}, nfa.Transitions[0][symbol], "symbol %q", symbol)
	}
	assert.Len(t, nfa.Transitions[0], 10)
}

func TestReadJFFNoInitialState(t *testing.T) {
	jff := `<structure><automaton>
		<state id="0" name="q0"/>
	</automaton></structure>`

	_, err := ReadJFF(strings.NewReader(jff))
	assert.Equal(t, ErrNoInitialState, errors.Cause(err))
}

func TestReadJFFBadRead(t *testing.T) {
	jff := `<structure><automaton>
		<state id="0" name="q0"><initial/></state>
		<transition><from>0</from><to>0</to><read>abc</read></transition>
	</automaton></structure>`

	_, err := ReadJFF(strings.NewReader(jff))
	require.Error(t, err)
	assert.Equal(t, ErrBadSymbol, errors.Cause(err))
}

func TestReadJFFNotXML(t *testing.T) {
	_, err := ReadJFF(strings.NewReader("From,Input,To\n0,a,1\n"))
	assert.Error(t, err)
}
