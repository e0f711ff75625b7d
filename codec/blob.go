package codec

import (
	"encoding/binary"
	"io"

	"github.com/arloliu/binstore/compress"
	"github.com/arloliu/binstore/format"
	"github.com/arloliu/binstore/internal/pool"
	"github.com/arloliu/binstore/section"
)

// lengthPrefixSize is the byte size of a version-1 blob's u32 length
// prefix.
const lengthPrefixSize = 4

// WriteBlob compresses values with cd and writes the framed blob to w.
//
// Version 0 writes a bare compressed frame with no length prefix, relying
// on cd (always LZ4Codec for version 0) being self-delimiting. Version 1
// writes a little-endian u32 byte count ahead of the frame so ReadBlob can
// bound the reader regardless of which codec produced it.
func WriteBlob(w io.Writer, version format.Version, cd compress.Codec, values []section.Value) error {
	payload := EncodeValueSet(values)

	if version == format.Version0 {
		enc, err := cd.NewEncoder(w)
		if err != nil {
			return err
		}
		if _, err := enc.Write(payload); err != nil {
			return err
		}

		return enc.Close()
	}

	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	enc, err := cd.NewEncoder(bb)
	if err != nil {
		return err
	}
	if _, err := enc.Write(payload); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	var lenPrefix [lengthPrefixSize]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(bb.Len()))
	if _, err := w.Write(lenPrefix[:]); err != nil {
		return err
	}
	_, err = bb.WriteTo(w)

	return err
}

// ReadBlob reads one framed blob from r and returns its decoded value set.
//
// Version 0 hands r directly to cd's decoder, trusting the codec's frame
// format to stop exactly where the blob ends. Version 1 reads the u32
// length prefix first and wraps the remaining reader in io.LimitReader, so
// a decoder that buffers ahead of the frame it is decoding (zstd, s2) never
// consumes bytes belonging to the next key's blob.
func ReadBlob(r io.Reader, version format.Version, cd compress.Codec) ([]section.Value, error) {
	var src io.Reader = r

	if version != format.Version0 {
		var lenPrefix [lengthPrefixSize]byte
		if _, err := io.ReadFull(r, lenPrefix[:]); err != nil {
			return nil, err
		}
		src = io.LimitReader(r, int64(binary.LittleEndian.Uint32(lenPrefix[:])))
	}

	dec, err := cd.NewDecoder(src)
	if err != nil {
		return nil, err
	}
	if closer, ok := dec.(io.Closer); ok {
		defer closer.Close()
	}

	payload, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	return DecodeValueSet(payload)
}
