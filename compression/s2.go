package compression

import (
	"io"

	"github.com/klauspost/compress/s2"
)

func newS2Writer(w io.Writer, level Level) Writer {
	if level == CompressionBest {
		return s2.NewWriter(w, s2.WriterBetterCompression())
	}
	return s2.NewWriter(w)
}

func newS2Reader(r io.Reader) io.ReadCloser {
	return io.NopCloser(s2.NewReader(r))
}
