package segfile

import (
	"fmt"
	"io"
	"os"

	"github.com/miretskiy/segfile/compression"
)

// Segment identifies the byte range committed by one open/commit cycle:
// Length bytes starting at absolute Offset within the file at Path.
// Constructed by SegmentWriter.Segment after a successful commit.
type Segment struct {
	Path   string
	Offset int64
	Length int64
}

// SegmentReader reads back the values of a committed segment, composing
// decompression and deserialization over the segment's byte range.
type SegmentReader struct {
	file *os.File
	comp io.ReadCloser
	dec  DeserializeStream
}

// OpenSegment opens seg for reading. Codec and serializer must match
// what the segment was written with.
func OpenSegment(seg Segment, codex compression.Codex, ser Serializer) (*SegmentReader, error) {
	f, err := os.Open(seg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open segment file: %w", err)
	}

	section := io.NewSectionReader(f, seg.Offset, seg.Length)
	comp, err := compression.NewReader(codex, section)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open decompression stream: %w", err)
	}

	return &SegmentReader{
		file: f,
		comp: comp,
		dec:  ser.DeserializeStream(comp),
	}, nil
}

// ReadObject decodes the next value into v. Returns io.EOF after the
// last committed value.
func (r *SegmentReader) ReadObject(v any) error {
	return r.dec.ReadObject(v)
}

// Close releases the underlying file and decompression handles
func (r *SegmentReader) Close() error {
	var firstErr error
	if err := r.dec.Close(); err != nil {
		firstErr = err
	}
	if err := r.comp.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := r.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
