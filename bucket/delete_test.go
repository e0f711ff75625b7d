package bucket

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/binstore/section"
)

func TestDelete_RemovesValuesAndDropsEmptyKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.bin")
	outPath := filepath.Join(dir, "out.bin")

	require.NoError(t, Create(path, map[section.HashedKey][]section.Value{
		1: {section.NewValue(0, 1), section.NewValue(0, 2)},
		2: {section.NewValue(0, 3)},
		3: {section.NewValue(0, 4), section.NewValue(0, 5)},
	}))

	toRemove := []section.Value{section.NewValue(0, 2), section.NewValue(0, 3)}
	require.NoError(t, Delete(path, outPath, toRemove))

	out, err := Open(outPath)
	require.NoError(t, err)
	defer out.Close()

	// key 2's only value was removed, so it is dropped entirely.
	assert.Equal(t, uint64(2), out.EntryCount())

	v1, err := out.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []section.Value{section.NewValue(0, 1)}, v1)

	_, err = out.Get(2)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	v3, err := out.Get(3)
	require.NoError(t, err)
	assert.Equal(t, []section.Value{section.NewValue(0, 4), section.NewValue(0, 5)}, v3)
}

func TestDelete_NoMatchingValuesIsNoOp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.bin")
	outPath := filepath.Join(dir, "out.bin")

	require.NoError(t, Create(path, map[section.HashedKey][]section.Value{
		1: {section.NewValue(0, 1)},
	}))

	require.NoError(t, Delete(path, outPath, []section.Value{section.NewValue(9, 9)}))

	out, err := Open(outPath)
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, uint64(1), out.EntryCount())
}

// TestDelete_EmptyRemoveSetIsIdempotent checks the algebraic law that
// deleting an empty value set reproduces the input bucket's logical
// contents exactly.
func TestDelete_EmptyRemoveSetIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.bin")
	outPath := filepath.Join(dir, "out.bin")

	entries := map[section.HashedKey][]section.Value{
		1: {section.NewValue(0, 1), section.NewValue(0, 2)},
		2: {section.NewValue(0, 3)},
	}
	require.NoError(t, Create(path, entries))

	require.NoError(t, Delete(path, outPath, nil))

	assert.Equal(t, logicalContents(t, path), logicalContents(t, outPath))
}

// TestDelete_MinusLaw mirrors spec scenario 7: for M = {k: {0..k} | k in
// 0..20}, removing {0, 1, 5} leaves get(k) == {0..k} \ {0, 1, 5}, with keys
// whose resulting set becomes empty absent entirely.
func TestDelete_MinusLaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.bin")
	outPath := filepath.Join(dir, "out.bin")

	entries := make(map[section.HashedKey][]section.Value, 20)
	for k := section.HashedKey(0); k < 20; k++ {
		values := make([]section.Value, 0, k+1)
		for v := uint64(0); v <= uint64(k); v++ {
			values = append(values, section.NewValue(0, v))
		}
		entries[k] = values
	}
	require.NoError(t, Create(path, entries))

	toRemove := []section.Value{section.NewValue(0, 0), section.NewValue(0, 1), section.NewValue(0, 5)}
	require.NoError(t, Delete(path, outPath, toRemove))

	out, err := Open(outPath)
	require.NoError(t, err)
	defer out.Close()

	removed := map[section.Value]struct{}{
		section.NewValue(0, 0): {}, section.NewValue(0, 1): {}, section.NewValue(0, 5): {},
	}
	for k := section.HashedKey(0); k < 20; k++ {
		var want []section.Value
		for v := uint64(0); v <= uint64(k); v++ {
			if _, drop := removed[section.NewValue(0, v)]; !drop {
				want = append(want, section.NewValue(0, v))
			}
		}

		got, err := out.Get(k)
		if len(want) == 0 {
			assert.ErrorIs(t, err, ErrKeyNotFound, "key %d", k)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, want, got, "key %d", k)
	}
}

// TestDelete_MinusLawRandomized repeats the delete-minus law over randomly
// generated buckets and removal sets.
func TestDelete_MinusLawRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	dir := t.TempDir()

	for iter := 0; iter < 25; iter++ {
		entries := randomEntries(rng, 20, 50)
		for k, values := range entries {
			entries[k] = sortedValues(dedupeValues(values))
		}

		path := filepath.Join(dir, "in.bin")
		outPath := filepath.Join(dir, "out.bin")
		require.NoError(t, Create(path, entries))

		removeCount := rng.Intn(5)
		toRemove := make([]section.Value, removeCount)
		for i := range toRemove {
			toRemove[i] = section.NewValue(0, uint64(rng.Intn(1000)))
		}
		removeSet := make(map[section.Value]struct{}, removeCount)
		for _, v := range toRemove {
			removeSet[v] = struct{}{}
		}

		require.NoError(t, Delete(path, outPath, toRemove))
		got := logicalContents(t, outPath)

		for k, values := range entries {
			var want []section.Value
			for _, v := range values {
				if _, drop := removeSet[v]; !drop {
					want = append(want, v)
				}
			}

			if len(want) == 0 {
				_, ok := got[k]
				assert.False(t, ok, "iteration %d key %d should be absent", iter, k)
				continue
			}
			assert.Equal(t, want, got[k], "iteration %d key %d", iter, k)
		}
	}
}

// dedupeValues removes duplicate values from values, keeping the first
// occurrence of each, independent of order.
func dedupeValues(values []section.Value) []section.Value {
	seen := make(map[section.Value]struct{}, len(values))
	out := values[:0:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
