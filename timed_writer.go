package segfile

import (
	"io"
	"time"
)

// TimedWriter forwards every write to an underlying writer while
// accumulating the wall-clock time spent inside each forwarded call.
// It performs no buffering and no transformation of bytes.
//
// Not safe for concurrent use; the single-writer contract of the
// enclosing pipeline applies transitively.
type TimedWriter struct {
	w       io.Writer
	elapsed time.Duration
}

// NewTimedWriter wraps w
func NewTimedWriter(w io.Writer) *TimedWriter {
	return &TimedWriter{w: w}
}

// Write forwards to the underlying writer, adding the call duration to
// the accumulator
func (t *TimedWriter) Write(p []byte) (int, error) {
	start := time.Now()
	n, err := t.w.Write(p)
	t.elapsed += time.Since(start)
	return n, err
}

// Elapsed returns the accumulated write time. The value is stable only
// once no further writes occur.
func (t *TimedWriter) Elapsed() time.Duration {
	return t.elapsed
}
