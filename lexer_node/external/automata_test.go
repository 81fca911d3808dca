package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/zigzin/automaton"
	"github.com/GDVFox/zigzin/storage"
)

func newTestStore(t *testing.T) *AutomataStore {
	cfg := NewStorageConfig()
	cfg.DataDir = t.TempDir()

	store, err := NewAutomataStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestDocument() *storage.DFADocument {
	return &storage.DFADocument{
		Start: 0,
		Transitions: []storage.TransitionRecord{
			{From: 0, Input: "a", To: 1},
			{From: 1, Input: "a", To: 1},
		},
		Accept: map[automaton.State]string{1: "A"},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := newTestStore(t)
	document := newTestDocument()

	require.NoError(t, store.Save("ident", document))

	loaded, err := store.Load("ident")
	require.NoError(t, err)
	assert.Equal(t, document, loaded)

	// Повторное чтение идет через кэш.
	cached, err := store.Load("ident")
	require.NoError(t, err)
	assert.Equal(t, document, cached)
}

func TestStoreLoadIsolated(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("ident", newTestDocument()))

	first, err := store.Load("ident")
	require.NoError(t, err)
	first.Accept[1] = "BROKEN"
	first.Transitions[0].Input = "z"

	second, err := store.Load("ident")
	require.NoError(t, err)
	assert.Equal(t, newTestDocument(), second)
}

func TestStoreSaveConflict(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("ident", newTestDocument()))

	err := store.Save("ident", newTestDocument())
	assert.Equal(t, ErrAlreadyExists, err)
}

func TestStoreLoadNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load("missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("ident", newTestDocument()))
	_, err := store.Load("ident")
	require.NoError(t, err)

	require.NoError(t, store.Delete("ident"))

	_, err = store.Load("ident")
	assert.Equal(t, ErrNotFound, err)
	assert.Equal(t, ErrNotFound, store.Delete("ident"))
}

func TestStoreList(t *testing.T) {
	store := newTestStore(t)

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, store.Save("second", newTestDocument()))
	require.NoError(t, store.Save("first", newTestDocument()))

	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, names)
}
