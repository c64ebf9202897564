package segfile

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/miretskiy/segfile/compression"
)

type writerState uint8

const (
	stateUnopened writerState = iota
	stateOpen
	stateClosed
)

// SegmentWriter appends serialized values to one backing file and either
// commits the written byte range as a Segment or reverts the file to its
// length at construction time.
//
// Values flow through serializer -> buffer -> compression -> TimedWriter
// -> file descriptor. The pipeline exists only between Open (or the
// first lazy Write) and the terminal CommitAndClose / RevertAndClose.
//
// The initial position is captured once, at construction, and is the
// rollback point for revert. It relies on nothing else appending to the
// file: one writer instance per file region, driven by one goroutine.
type SegmentWriter struct {
	path string
	cfg  config

	initialPos int64
	finalPos   int64 // -1 until a successful commit

	state   writerState
	elapsed time.Duration

	// Live pipeline; all nil unless state == stateOpen
	file  *os.File
	timed *TimedWriter
	comp  compression.Writer
	buf   *bufio.Writer
	enc   SerializeStream
}

// NewSegmentWriter creates a writer over path, capturing the current
// file length (0 if the file does not exist yet) as the rollback point.
// The backing file is not opened until Open or the first Write.
func NewSegmentWriter(path string, opts ...Option) (*SegmentWriter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	var initialPos int64
	info, err := os.Stat(path)
	switch {
	case err == nil:
		initialPos = info.Size()
	case os.IsNotExist(err):
		initialPos = 0
	default:
		return nil, fmt.Errorf("failed to stat segment file: %w", err)
	}

	return &SegmentWriter{
		path:       path,
		cfg:        cfg,
		initialPos: initialPos,
		finalPos:   -1,
	}, nil
}

// Open builds the write pipeline over the backing file, opened in append
// mode. Calling Open while the pipeline already exists is a caller error.
// Open after a close rebuilds the pipeline for a new logical block; the
// rollback point is not recaptured.
func (w *SegmentWriter) Open() error {
	if w.state == stateOpen {
		return ErrAlreadyOpen
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, w.cfg.FileMode)
	if err != nil {
		return fmt.Errorf("failed to open segment file: %w", err)
	}

	timed := NewTimedWriter(f)
	comp, err := compression.NewWriter(w.cfg.Codex, w.cfg.Level, timed)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to open compression stream: %w", err)
	}

	w.file = f
	w.timed = timed
	w.comp = comp
	w.buf = bufio.NewWriterSize(comp, w.cfg.BufferSize)
	w.enc = w.cfg.Serializer.SerializeStream(w.buf)
	w.state = stateOpen
	return nil
}

// IsOpen reports whether the live write pipeline exists
func (w *SegmentWriter) IsOpen() bool {
	return w.state == stateOpen
}

// Write serializes v through the pipeline, opening it first if needed.
// Bytes may remain in the buffering layers until commit. Writing after
// CommitAndClose or RevertAndClose returns ErrClosed.
func (w *SegmentWriter) Write(v any) error {
	switch w.state {
	case stateClosed:
		return ErrClosed
	case stateUnopened:
		if err := w.Open(); err != nil {
			return err
		}
	}
	return w.enc.WriteObject(v)
}

// CommitAndClose flushes the pipeline in order (serializer, buffer, then
// the compression frame on close), optionally syncs file data to stable
// storage, closes the pipeline and records the committed range. After a
// successful return the bytes between the initial position and the new
// file length are durable and Segment() becomes valid.
//
// Errors propagate: a failed commit must not look like success, and the
// file is left holding whatever was flushed. Callers must follow a
// failed commit (or a failed write) with RevertAndClose to restore the
// file.
//
// Committing a writer that was never opened is a valid empty commit.
func (w *SegmentWriter) CommitAndClose() error {
	switch w.state {
	case stateClosed:
		return ErrClosed
	case stateUnopened:
		// Nothing was written; commit the empty segment.
		w.finalPos = w.initialPos
		w.state = stateClosed
		return nil
	}

	// Serializer first: some implementations buffer internally and only
	// an explicit flush pushes the tail into the buffer below.
	if err := w.enc.Flush(); err != nil {
		return fmt.Errorf("failed to flush serializer: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush segment buffer: %w", err)
	}
	if err := w.close(); err != nil {
		return err
	}

	info, err := os.Stat(w.path)
	if err != nil {
		return fmt.Errorf("failed to stat segment file after commit: %w", err)
	}
	w.finalPos = info.Size()
	return nil
}

// close tears down the pipeline: finish the compression frame, flush the
// remaining bytes to the descriptor, sync if configured, release all
// handles. Idempotent; collects the first error but always releases.
func (w *SegmentWriter) close() error {
	if w.state != stateOpen {
		return nil
	}

	var firstErr error
	fail := func(err error, msg string) {
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf(msg+": %w", err)
		}
	}

	// Drain the buffer into the compressor before ending its frame; the
	// frame-end bytes go straight to the descriptor.
	fail(w.buf.Flush(), "failed to flush segment buffer")
	fail(w.comp.Close(), "failed to close compression stream")

	if w.cfg.SyncWrites {
		start := time.Now()
		fail(fdatasync(w.file), "failed to sync segment file")
		w.elapsed += time.Since(start)
	}

	fail(w.enc.Close(), "failed to close serializer")
	w.elapsed += w.timed.Elapsed()

	fail(w.file.Close(), "failed to close segment file")

	w.file, w.timed, w.comp, w.buf, w.enc = nil, nil, nil, nil, nil
	w.state = stateClosed
	return firstErr
}

// RevertAndClose discards everything written since construction by
// truncating the backing file to the initial position. It never fails:
// errors from the best-effort pipeline teardown and from the truncate
// are logged and swallowed, because revert typically runs on an error
// path where the caller already has a primary failure to report.
//
// Safe to call in any state, any number of times; after the first call
// further calls are no-ops against an already restored file.
func (w *SegmentWriter) RevertAndClose() {
	if w.state == stateOpen {
		// Same flush/close sequence as commit, so no OS-level buffers
		// survive the truncate. Errors are collected, logged once.
		err := w.enc.Flush()
		if err2 := w.buf.Flush(); err == nil {
			err = err2
		}
		if err2 := w.close(); err == nil {
			err = err2
		}
		if err != nil {
			log.Error("failed to close pipeline during revert",
				"path", w.path, "error", err)
		}
	}
	w.state = stateClosed

	if err := os.Truncate(w.path, w.initialPos); err != nil && !os.IsNotExist(err) {
		log.Error("failed to truncate segment file during revert",
			"path", w.path, "position", w.initialPos, "error", err)
	}
}

// Segment returns the committed byte range. Calling it before a
// successful CommitAndClose is a programmer error and panics.
func (w *SegmentWriter) Segment() Segment {
	if w.finalPos < 0 {
		panic("segfile: Segment called before a successful commit")
	}
	return Segment{
		Path:   w.path,
		Offset: w.initialPos,
		Length: w.finalPos - w.initialPos,
	}
}

// BytesWritten returns the committed segment length. Calling it before a
// successful CommitAndClose is a programmer error and panics.
func (w *SegmentWriter) BytesWritten() int64 {
	if w.finalPos < 0 {
		panic("segfile: BytesWritten called before a successful commit")
	}
	return w.finalPos - w.initialPos
}

// Elapsed returns the cumulative time spent in blocking write and sync
// calls. Stable only after the writer is closed.
func (w *SegmentWriter) Elapsed() time.Duration {
	return w.elapsed
}
