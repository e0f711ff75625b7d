package sparseindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/binstore/endian"
	"github.com/arloliu/binstore/section"
)

func keysRange(n int) []section.HashedKey {
	keys := make([]section.HashedKey, n)
	for i := range keys {
		keys[i] = section.HashedKey(i)
	}
	return keys
}

func TestBuild_Empty(t *testing.T) {
	si := Build(nil, 10)
	assert.Empty(t, si.Samples)
}

func TestBuild_SingleKey(t *testing.T) {
	for step := uint64(1); step < 100; step++ {
		si := Build([]section.HashedKey{42}, step)

		require.Len(t, si.Samples, 2)
		assert.Equal(t, si.Samples[0].Key, si.Samples[1].Key)
		assert.Equal(t, si.Samples[0].Offset, si.Samples[1].Offset)
		assert.Equal(t, uint64(0), si.Samples[0].Offset)
	}
}

func TestBuild_ManyKeys(t *testing.T) {
	for _, length := range []int{2, 5, 17, 101, 500} {
		for _, step := range []uint64{1, 3, 7, 50} {
			keys := keysRange(length)
			si := Build(keys, step)

			require.GreaterOrEqual(t, len(si.Samples), 2)
			assert.Equal(t, keys[0], si.Samples[0].Key)
			assert.Equal(t, keys[len(keys)-1], si.Samples[len(si.Samples)-1].Key)

			for i := 0; i < len(si.Samples)-1; i++ {
				assert.Less(t, si.Samples[i].Key, si.Samples[i+1].Key)
				assert.Less(t, si.Samples[i].Offset, si.Samples[i+1].Offset)
				assert.Equal(t, uint64(i)*step*section.DenseIndexEntrySize, si.Samples[i].Offset)
			}
		}
	}
}

func TestTryGet_AllPresent(t *testing.T) {
	keys := keysRange(500)
	si := Build(keys, 13)

	for _, key := range keys {
		_, _, ok := si.TryGet(key)
		assert.True(t, ok, "key %d should be findable", key)
	}
}

func TestTryGet_OutOfRange(t *testing.T) {
	keys := keysRange(100)
	si := Build(keys, 10)

	_, _, ok := si.TryGet(1000)
	assert.False(t, ok)
}

func TestTryGet_TooFewSamples(t *testing.T) {
	si := SparseIndex{Step: 10}
	_, _, ok := si.TryGet(5)
	assert.False(t, ok)

	si.Samples = []Sample{{Key: 1, Offset: 0}}
	_, _, ok = si.TryGet(1)
	assert.False(t, ok)
}

func TestSparseIndex_BytesRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	si := Build(keysRange(37), 5)

	b := si.Bytes(engine)
	assert.Equal(t, si.Size(), uint64(len(b)))

	got, consumed, err := ParseSparseIndex(b, engine)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(b)), consumed)
	assert.Equal(t, si, got)
}

func TestParseSparseIndex_ShortBuffer(t *testing.T) {
	_, _, err := ParseSparseIndex(make([]byte, 15), endian.GetLittleEndianEngine())
	assert.ErrorIs(t, err, section.ErrShortBuffer)

	_, _, err = ParseSparseIndex(make([]byte, 16), endian.GetLittleEndianEngine())
	assert.NoError(t, err) // count=0, nothing more to read

	buf := make([]byte, 16)
	engine := endian.GetLittleEndianEngine()
	engine.PutUint64(buf[8:16], 1) // claims one sample but no bytes for it
	_, _, err = ParseSparseIndex(buf, engine)
	assert.ErrorIs(t, err, section.ErrShortBuffer)
}
