package segfile

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// memWriter is an in-memory Writer double: same state machine, no disk.
type memWriter struct {
	buf      bytes.Buffer
	enc      SerializeStream
	closed   bool
	reverted bool
	final    int64
}

func (m *memWriter) Open() error {
	m.enc = GobSerializer{}.SerializeStream(&m.buf)
	return nil
}

func (m *memWriter) Write(v any) error {
	if m.closed {
		return ErrClosed
	}
	if m.enc == nil {
		if err := m.Open(); err != nil {
			return err
		}
	}
	return m.enc.WriteObject(v)
}

func (m *memWriter) CommitAndClose() error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	m.final = int64(m.buf.Len())
	return nil
}

func (m *memWriter) RevertAndClose() {
	m.closed = true
	m.reverted = true
	m.buf.Reset()
}

func (m *memWriter) Segment() Segment {
	if !m.closed || m.reverted {
		panic("segment requested before a successful commit")
	}
	return Segment{Path: "mem", Offset: 0, Length: m.final}
}

func (m *memWriter) BytesWritten() int64    { return m.Segment().Length }
func (m *memWriter) Elapsed() time.Duration { return 0 }

// appendBlock drives any Writer implementation through one full
// open/write/commit cycle.
func appendBlock(w Writer, values ...any) (Segment, error) {
	for _, v := range values {
		if err := w.Write(v); err != nil {
			w.RevertAndClose()
			return Segment{}, err
		}
	}
	if err := w.CommitAndClose(); err != nil {
		w.RevertAndClose()
		return Segment{}, err
	}
	return w.Segment(), nil
}

func TestWriterDouble_MatchesDiskSemantics(t *testing.T) {
	mem := &memWriter{}
	seg, err := appendBlock(mem, "a", "b", "c")
	require.NoError(t, err)
	require.Greater(t, seg.Length, int64(0))

	require.ErrorIs(t, mem.Write("late"), ErrClosed)

	reverted := &memWriter{}
	require.NoError(t, reverted.Write("a"))
	reverted.RevertAndClose()
	require.Panics(t, func() { reverted.Segment() })
}
