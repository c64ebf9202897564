package segfile

import "time"

// Writer is the capability surface of a segment writer: open, append,
// then exactly one of commit or revert. SegmentWriter is the disk-backed
// implementation; tests may substitute an in-memory double.
type Writer interface {
	// Open builds the write pipeline; Write opens lazily if needed
	Open() error

	// Write serializes one value into the pending segment
	Write(v any) error

	// CommitAndClose durably finalizes the pending segment
	CommitAndClose() error

	// RevertAndClose discards the pending segment; never fails
	RevertAndClose()

	// Segment returns the committed range; valid only after commit
	Segment() Segment

	// BytesWritten returns the committed length; valid only after commit
	BytesWritten() int64

	// Elapsed returns cumulative blocking write time; stable after close
	Elapsed() time.Duration
}

var _ Writer = (*SegmentWriter)(nil)
