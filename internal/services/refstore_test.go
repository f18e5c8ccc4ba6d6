package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceStoreEnsureCreatesPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.vec")
	store := NewReferenceStore(path, 4, nil)

	vectors, err := store.Ensure()
	require.NoError(t, err)

	require.Len(t, vectors, placeholderVectorCount)
	for _, vec := range vectors {
		assert.Len(t, vec, 4)
	}

	_, err = os.Stat(path)
	assert.NoError(t, err, "placeholder store should be persisted")
}

func TestReferenceStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.vec")
	store := NewReferenceStore(path, 3, nil)

	want := [][]float32{
		{1, 2, 3},
		{-0.5, 0.25, 9},
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReferenceStoreDimensionSelfHeal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.vec")

	stale := NewReferenceStore(path, 8, nil)
	_, err := stale.Ensure()
	require.NoError(t, err)

	// Same file, new model dimension: the store must regenerate rather
	// than fail.
	store := NewReferenceStore(path, 4, nil)
	vectors, err := store.Ensure()
	require.NoError(t, err)

	require.NotEmpty(t, vectors)
	for _, vec := range vectors {
		assert.Len(t, vec, 4)
	}

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, reloaded[0], 4, "regenerated store should persist the new dimension")
}

func TestReferenceStoreLoadTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.vec")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	store := NewReferenceStore(path, 4, nil)
	_, err := store.Load()
	assert.ErrorContains(t, err, "truncated")
}

func TestReferenceStoreSaveRejectsWrongDimension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.vec")
	store := NewReferenceStore(path, 2, nil)

	err := store.Save([][]float32{{1, 2, 3}})
	assert.Error(t, err)
}
