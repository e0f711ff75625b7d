// Package compress wraps the third-party compression libraries that frame
// a bucket's value-set blobs.
//
// A value-set blob is never held as a single in-memory buffer: it is
// written as a stream straight into the bucket file, and read back the same
// way, so the writer never has to hold more than one key's encoded values
// in memory at a time. Codec therefore exposes streaming Encoder/Decoder
// wrappers over io.Writer/io.Reader rather than whole-buffer Compress/
// Decompress calls.
//
// Version 0 buckets are hardcoded to LZ4Codec: its frame format carries its
// own end-of-stream marker, so a blob needs no outer length prefix to know
// where it ends when another blob immediately follows it in the file.
// Version 1 buckets may pick any Codec below; codec.WriteBlob and
// codec.ReadBlob add the u32 length prefix the other codecs need to be
// embedded safely back-to-back in one file.
package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/binstore/format"
)

// Encoder is a compressing io.Writer. Close must be called to flush the
// codec's trailing frame data; it never closes the underlying io.Writer.
type Encoder interface {
	io.WriteCloser
}

// Codec creates the Encoder/Decoder pair for one compression algorithm.
type Codec interface {
	// Type reports the CompressionType this codec implements.
	Type() format.CompressionType

	// NewEncoder returns an Encoder that writes a compressed frame to w.
	NewEncoder(w io.Writer) (Encoder, error)

	// NewDecoder returns a reader yielding the decompressed bytes of a
	// single frame read from r. Some implementations buffer ahead of the
	// frame they are decoding, so a caller that needs to read another
	// frame from the same r afterward must bound r first; see
	// codec.ReadBlob, which does this for every version-1 blob, whatever
	// its codec, and reads version-0 (LZ4) blobs unbounded.
	NewDecoder(r io.Reader) (io.Reader, error)
}

// CreateCodec is a factory function that creates a Codec for the given
// compression type. target names the caller for the returned error message.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	return CreateCodec(compressionType, "blob")
}
