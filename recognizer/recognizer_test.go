package recognizer

import (
	"io"
	"testing"

	"github.com/GDVFox/zigzin/automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DFA, принимающий 'a' с меткой "A" и 'aa' с меткой "AA".
func newDoubleADFA() *automaton.DFA {
	dfa := automaton.NewDFA(0)
	dfa.AddTransition(0, 'a', 1)
	dfa.AddTransition(1, 'a', 2)
	dfa.Accept[1] = "A"
	dfa.Accept[2] = "AA"
	return dfa
}

func TestNextTokenLongestMatch(t *testing.T) {
	rec := NewLexicalRecognizer(newDoubleADFA(), "aa")

	token, err := rec.NextToken()
	require.NoError(t, err)
	assert.Equal(t, "AA", token.Domain)
	assert.Equal(t, "aa", token.Lexeme)

	_, err = rec.NextToken()
	assert.Equal(t, io.EOF, err)
}

func TestNextTokenBacktrack(t *testing.T) {
	// 'aab' принимается как "B", но на входе "aa" автомат останавливается
	// в недопускающем состоянии и разбор откатывается к лексеме 'a'.
	dfa := automaton.NewDFA(0)
	dfa.AddTransition(0, 'a', 1)
	dfa.AddTransition(1, 'a', 2)
	dfa.AddTransition(2, 'b', 3)
	dfa.Accept[1] = "A"
	dfa.Accept[3] = "B"

	tokens, err := Tokenize(dfa, "aa")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "A", tokens[0].Domain)
	assert.Equal(t, "a", tokens[0].Lexeme)
	assert.Equal(t, "A", tokens[1].Domain)

	tokens, err = Tokenize(dfa, "aab")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "B", tokens[0].Domain)
	assert.Equal(t, "aab", tokens[0].Lexeme)
}

func TestNextTokenSkipsWhitespace(t *testing.T) {
	tokens, err := Tokenize(newDoubleADFA(), "a  a\ta")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, Position{Line: 1, Pos: 1, Index: 0}, tokens[0].Coords.Starting)
	assert.Equal(t, Position{Line: 1, Pos: 4, Index: 3}, tokens[1].Coords.Starting)
	assert.Equal(t, Position{Line: 1, Pos: 6, Index: 5}, tokens[2].Coords.Starting)
}

func TestNextTokenCoords(t *testing.T) {
	rec := NewLexicalRecognizer(newDoubleADFA(), "aa")

	token, err := rec.NextToken()
	require.NoError(t, err)
	assert.Equal(t, Fragment{
		Starting: Position{Line: 1, Pos: 1, Index: 0},
		Ending:   Position{Line: 1, Pos: 3, Index: 2},
	}, token.Coords)
}

func TestNextTokenMultiline(t *testing.T) {
	dfa := automaton.NewDFA(0)
	dfa.AddTransition(0, 'a', 1)
	dfa.AddTransition(1, '\n', 2)
	dfa.AddTransition(2, 'a', 3)
	dfa.Accept[3] = "PAIR"

	rec := NewLexicalRecognizer(dfa, "a\na")
	token, err := rec.NextToken()
	require.NoError(t, err)
	assert.Equal(t, "a\na", token.Lexeme)
	assert.Equal(t, Position{Line: 2, Pos: 2, Index: 3}, token.Coords.Ending)
}

func TestNextTokenLexicalError(t *testing.T) {
	rec := NewLexicalRecognizer(newDoubleADFA(), "a\naZ")

	token, err := rec.NextToken()
	require.NoError(t, err)
	assert.Equal(t, "a", token.Lexeme)

	token, err = rec.NextToken()
	require.NoError(t, err)
	assert.Equal(t, Position{Line: 2, Pos: 1, Index: 2}, token.Coords.Starting)

	_, err = rec.NextToken()
	require.Error(t, err)
	lexErr, ok := err.(*LexicalError)
	require.True(t, ok)
	assert.Equal(t, &LexicalError{Line: 2, Pos: 2, Char: 'Z'}, lexErr)
	assert.Equal(t, `unexpected character 'Z' (2 2)`, lexErr.Error())
}

func TestNextTokenErrorAtStart(t *testing.T) {
	rec := NewLexicalRecognizer(newDoubleADFA(), "z")

	_, err := rec.NextToken()
	lexErr, ok := err.(*LexicalError)
	require.True(t, ok)
	assert.Equal(t, &LexicalError{Line: 1, Pos: 1, Char: 'z'}, lexErr)
}

func TestNextTokenEmptyText(t *testing.T) {
	rec := NewLexicalRecognizer(newDoubleADFA(), "")
	_, err := rec.NextToken()
	assert.Equal(t, io.EOF, err)

	rec = NewLexicalRecognizer(newDoubleADFA(), " \n\t ")
	_, err = rec.NextToken()
	assert.Equal(t, io.EOF, err)
}

func TestNextTokenUnicode(t *testing.T) {
	dfa := automaton.NewDFA(0)
	dfa.AddTransition(0, 'я', 1)
	dfa.Accept[1] = "RU"

	tokens, err := Tokenize(dfa, "я я")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "я", tokens[0].Lexeme)
	// 'я' занимает два байта, Index смещается на размер руны.
	assert.Equal(t, Position{Line: 1, Pos: 3, Index: 3}, tokens[1].Coords.Starting)
}

func TestTokenizeFailsAtomically(t *testing.T) {
	tokens, err := Tokenize(newDoubleADFA(), "aa z")
	require.Error(t, err)
	assert.Nil(t, tokens)
}

func TestTokenizeEmptyDFA(t *testing.T) {
	dfa := automaton.NewDFA(0)

	_, err := Tokenize(dfa, "a")
	lexErr, ok := err.(*LexicalError)
	require.True(t, ok)
	assert.Equal(t, &LexicalError{Line: 1, Pos: 1, Char: 'a'}, lexErr)
}
