package binstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOpenGet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bucket.bin")

	key := HashKey("user:42")
	entries := map[HashedKey][]Value{
		key: {NewValue(0, 1), NewValue(0, 2)},
	}

	require.NoError(t, Create(path, entries))

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	values, err := b.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []Value{NewValue(0, 1), NewValue(0, 2)}, values)
}

func TestHashKey_Deterministic(t *testing.T) {
	assert.Equal(t, HashKey("same"), HashKey("same"))
	assert.NotEqual(t, HashKey("a"), HashKey("b"))
}

func TestMergeAndDelete(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "a.bin")
	path2 := filepath.Join(dir, "b.bin")
	mergedPath := filepath.Join(dir, "merged.bin")
	deletedPath := filepath.Join(dir, "deleted.bin")

	require.NoError(t, Create(path1, map[HashedKey][]Value{1: {NewValue(0, 1)}}))
	require.NoError(t, Create(path2, map[HashedKey][]Value{2: {NewValue(0, 2)}}))

	require.NoError(t, Merge(path1, path2, mergedPath))

	merged, err := Open(mergedPath)
	require.NoError(t, err)
	defer merged.Close()
	assert.Equal(t, uint64(2), merged.EntryCount())

	require.NoError(t, Delete(mergedPath, deletedPath, []Value{NewValue(0, 1)}))

	deleted, err := Open(deletedPath)
	require.NoError(t, err)
	defer deleted.Close()
	assert.Equal(t, uint64(1), deleted.EntryCount())
}
