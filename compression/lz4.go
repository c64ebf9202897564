package compression

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// lzLevel maps our normalized levels to LZ4 specific levels.
// LZ4 levels 0-2 use the fast algorithm, while 3-12 use High Compression (HC).
func lzLevel(l Level) lz4.CompressionLevel {
	switch l {
	case CompressionSpeed:
		return lz4.Fast
	case CompressionBest:
		return lz4.Level9
	default:
		return lz4.Level5
	}
}

func newLZ4Writer(w io.Writer, level Level) (Writer, error) {
	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.CompressionLevelOption(lzLevel(level))); err != nil {
		return nil, err
	}
	return zw, nil
}

func newLZ4Reader(r io.Reader) io.ReadCloser {
	return io.NopCloser(lz4.NewReader(r))
}
