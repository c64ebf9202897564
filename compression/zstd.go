package compression

import (
	"io"

	"github.com/DataDog/zstd"
)

func zLevel(l Level) int {
	switch l {
	case CompressionSpeed:
		return zstd.BestSpeed
	case CompressionBest:
		return zstd.BestCompression
	default:
		return zstd.DefaultCompression
	}
}

func newZstdWriter(w io.Writer, level Level) Writer {
	// zstd.Writer flushes its frame on Close without touching w.
	return zstd.NewWriterLevel(w, zLevel(level))
}

func newZstdReader(r io.Reader) io.ReadCloser {
	return zstd.NewReader(r)
}
