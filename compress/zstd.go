package compress

// ZstdCompressor compresses with Zstandard, trading speed for the best
// compression ratio of the built-in codecs.
//
// The default implementation is the pure-Go klauspost/compress encoder.
// Building with the cgo_zstd tag switches to valyala/gozstd, which binds the
// reference C library.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
