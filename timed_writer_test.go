package segfile

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// slowWriter simulates a slow disk by sleeping inside every Write
type slowWriter struct {
	inner io.Writer
	delay time.Duration
}

func (s *slowWriter) Write(p []byte) (int, error) {
	time.Sleep(s.delay)
	return s.inner.Write(p)
}

func TestTimedWriter_ForwardsBytesUnchanged(t *testing.T) {
	var sink bytes.Buffer
	tw := NewTimedWriter(&sink)

	n, err := tw.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = tw.Write([]byte(" world"))
	require.NoError(t, err)

	require.Equal(t, "hello world", sink.String())
}

func TestTimedWriter_AccumulatesWriteTime(t *testing.T) {
	const delay = 2 * time.Millisecond
	const writes = 5

	var sink bytes.Buffer
	tw := NewTimedWriter(&slowWriter{inner: &sink, delay: delay})

	for i := 0; i < writes; i++ {
		_, err := tw.Write([]byte("x"))
		require.NoError(t, err)
	}

	// Elapsed covers at least the simulated disk latency of every call.
	require.GreaterOrEqual(t, tw.Elapsed(), writes*delay)
}

func TestTimedWriter_PropagatesErrors(t *testing.T) {
	wantErr := io.ErrClosedPipe
	tw := NewTimedWriter(&failingWriter{err: wantErr})

	before := tw.Elapsed()
	_, err := tw.Write([]byte("x"))
	require.ErrorIs(t, err, wantErr)

	// The failed call still counted toward the accumulator.
	require.GreaterOrEqual(t, tw.Elapsed(), before)
}

type failingWriter struct {
	err error
}

func (f *failingWriter) Write(p []byte) (int, error) {
	return 0, f.err
}
