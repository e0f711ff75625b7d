package bucket

import (
	"github.com/arloliu/binstore/format"
	"github.com/arloliu/binstore/internal/options"
)

// createConfig holds the settings Create applies after defaulting them.
type createConfig struct {
	version         format.Version
	compressionType format.CompressionType
	sparseStep      uint64
}

func defaultCreateConfig() *createConfig {
	return &createConfig{
		version:         format.CurrentVersion,
		compressionType: format.CompressionLZ4,
		sparseStep:      format.DefaultSparseIndexStep,
	}
}

// CreateOption configures Create. The default, with no options, produces a
// format.Version0 bucket: LZ4-framed blobs with no length prefix, matching
// the spec-exact on-disk layout.
type CreateOption = options.Option[*createConfig]

// WithCompression opts a bucket into the format.Version1 extension, so its
// value-set blobs are framed with the given codec instead of the hardcoded
// version-0 LZ4 frame. format.CompressionLZ4 is also valid here, and stays
// on version 1's length-prefixed framing rather than reverting to version
// 0's bare-frame layout.
func WithCompression(c format.CompressionType) CreateOption {
	return options.NoError(func(cfg *createConfig) {
		cfg.version = format.Version1
		cfg.compressionType = c
	})
}

// WithSparseIndexStep overrides the number of dense-index records between
// consecutive sparse-index samples. Smaller steps shrink the bounded linear
// scan Get falls back to at the cost of a larger in-memory sparse index.
func WithSparseIndexStep(step uint64) CreateOption {
	return options.NoError(func(cfg *createConfig) {
		cfg.sparseStep = step
	})
}
