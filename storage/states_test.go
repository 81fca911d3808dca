package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/zigzin/automaton"
)

func TestReadAcceptStates(t *testing.T) {
	accept, err := ReadAcceptStates(strings.NewReader(`[[3, "X"], [5, "Y"]]`))
	require.NoError(t, err)
	assert.Equal(t, map[automaton.State]string{3: "X", 5: "Y"}, accept)

	accept, err = ReadAcceptStates(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, accept)
}

func TestReadAcceptStatesErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not a list", `{"3": "X"}`},
		{"short record", `[[3]]`},
		{"long record", `[[3, "X", "Y"]]`},
		{"negative state", `[[-1, "X"]]`},
		{"string state", `[["3", "X"]]`},
		{"numeric label", `[[3, 4]]`},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ReadAcceptStates(strings.NewReader(testCase.data))
			assert.Error(t, err)
		})
	}
}

func TestWriteAcceptStatesRoundTrip(t *testing.T) {
	accept := map[automaton.State]string{7: "C", 2: "A", 4: "B"}

	var buf bytes.Buffer
	require.NoError(t, WriteAcceptStates(&buf, accept))
	assert.Equal(t, "[[2,\"A\"],[4,\"B\"],[7,\"C\"]]\n", buf.String())

	restored, err := ReadAcceptStates(&buf)
	require.NoError(t, err)
	assert.Equal(t, accept, restored)
}

func TestReadStatesTypes(t *testing.T) {
	data := `{"initial": [0, 4], "final": [[2, "NUM"], [3, "ID"]]}`

	types, err := ReadStatesTypes(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []automaton.State{0, 4}, types.Initial)
	assert.Equal(t, map[automaton.State]string{2: "NUM", 3: "ID"}, types.Final)
}

func TestReadStatesTypesErrors(t *testing.T) {
	_, err := ReadStatesTypes(strings.NewReader(`{"initial": [-2], "final": []}`))
	require.Error(t, err)
	assert.Equal(t, ErrBadStatesFile, errors.Cause(err))

	_, err = ReadStatesTypes(strings.NewReader(`{"initial": [0], "final": [[1]]}`))
	require.Error(t, err)
	assert.Equal(t, ErrBadStatesFile, errors.Cause(err))
}
