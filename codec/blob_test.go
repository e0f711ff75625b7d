package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/binstore/compress"
	"github.com/arloliu/binstore/format"
	"github.com/arloliu/binstore/section"
)

func sampleValues() []section.Value {
	return []section.Value{
		section.NewValue(0, 1),
		section.NewValue(0, 2),
		section.NewValue(1, 0),
	}
}

func TestValueSet_RoundTrip(t *testing.T) {
	values := sampleValues()

	encoded := EncodeValueSet(values)
	decoded, err := DecodeValueSet(encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestValueSet_Empty(t *testing.T) {
	encoded := EncodeValueSet(nil)
	decoded, err := DecodeValueSet(encoded)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecodeValueSet_ShortBuffer(t *testing.T) {
	_, err := DecodeValueSet([]byte{1, 2, 3})
	assert.ErrorIs(t, err, section.ErrShortBuffer)

	encoded := EncodeValueSet(sampleValues())
	_, err = DecodeValueSet(encoded[:len(encoded)-1])
	assert.ErrorIs(t, err, section.ErrShortBuffer)
}

func TestWriteReadBlob_Version0(t *testing.T) {
	cd := compress.NewLZ4Codec()
	values := sampleValues()

	var buf bytes.Buffer
	require.NoError(t, WriteBlob(&buf, format.Version0, cd, values))

	got, err := ReadBlob(&buf, format.Version0, cd)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestWriteReadBlob_Version0_BackToBack(t *testing.T) {
	cd := compress.NewLZ4Codec()
	first := []section.Value{section.NewValue(1, 1)}
	second := []section.Value{section.NewValue(2, 2), section.NewValue(2, 3)}

	var buf bytes.Buffer
	require.NoError(t, WriteBlob(&buf, format.Version0, cd, first))
	require.NoError(t, WriteBlob(&buf, format.Version0, cd, second))

	got1, err := ReadBlob(&buf, format.Version0, cd)
	require.NoError(t, err)
	assert.Equal(t, first, got1)

	got2, err := ReadBlob(&buf, format.Version0, cd)
	require.NoError(t, err)
	assert.Equal(t, second, got2)
}

func TestWriteReadBlob_Version1_AllCodecs(t *testing.T) {
	codecs := []compress.Codec{
		compress.NewNoOpCodec(),
		compress.NewLZ4Codec(),
		compress.NewZstdCodec(),
		compress.NewS2Codec(),
	}

	for _, cd := range codecs {
		t.Run(cd.Type().String(), func(t *testing.T) {
			first := []section.Value{section.NewValue(1, 1)}
			second := []section.Value{section.NewValue(2, 2), section.NewValue(2, 3)}

			var buf bytes.Buffer
			require.NoError(t, WriteBlob(&buf, format.Version1, cd, first))
			require.NoError(t, WriteBlob(&buf, format.Version1, cd, second))

			got1, err := ReadBlob(&buf, format.Version1, cd)
			require.NoError(t, err)
			assert.Equal(t, first, got1)

			got2, err := ReadBlob(&buf, format.Version1, cd)
			require.NoError(t, err)
			assert.Equal(t, second, got2)
		})
	}
}
