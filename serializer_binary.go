package segfile

import (
	"bufio"
	"encoding"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// BinarySerializer streams raw byte payloads as length-prefixed frames
// with a per-frame xxhash64 checksum.
//
// Frame layout: uvarint payload length, payload bytes, checksum (8 bytes,
// little endian, xxhash64 of the payload). Reads verify the checksum and
// fail with ErrCorrupted on mismatch.
//
// WriteObject accepts []byte or encoding.BinaryMarshaler; ReadObject
// fills *[]byte or encoding.BinaryUnmarshaler.
type BinarySerializer struct{}

func (BinarySerializer) SerializeStream(w io.Writer) SerializeStream {
	return &binaryEncodeStream{w: w}
}

func (BinarySerializer) DeserializeStream(r io.Reader) DeserializeStream {
	return &binaryDecodeStream{r: bufio.NewReader(r)}
}

type binaryEncodeStream struct {
	w   io.Writer
	buf []byte // reused frame scratch
}

func (s *binaryEncodeStream) WriteObject(v any) error {
	payload, err := binaryPayload(v)
	if err != nil {
		return err
	}

	s.buf = s.buf[:0]
	s.buf = binary.AppendUvarint(s.buf, uint64(len(payload)))
	s.buf = append(s.buf, payload...)
	s.buf = binary.LittleEndian.AppendUint64(s.buf, xxhash.Sum64(payload))

	_, err = s.w.Write(s.buf)
	return err
}

func (s *binaryEncodeStream) Flush() error { return nil }
func (s *binaryEncodeStream) Close() error { return nil }

func binaryPayload(v any) ([]byte, error) {
	switch p := v.(type) {
	case []byte:
		return p, nil
	case encoding.BinaryMarshaler:
		return p.MarshalBinary()
	default:
		return nil, fmt.Errorf("binary serializer: unsupported value type %T", v)
	}
}

type binaryDecodeStream struct {
	r *bufio.Reader
}

func (s *binaryDecodeStream) ReadObject(v any) error {
	size, err := binary.ReadUvarint(s.r)
	if err != nil {
		return err
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(s.r, payload); err != nil {
		return fmt.Errorf("failed to read frame payload: %w", err)
	}

	var sum [8]byte
	if _, err := io.ReadFull(s.r, sum[:]); err != nil {
		return fmt.Errorf("failed to read frame checksum: %w", err)
	}

	expected := binary.LittleEndian.Uint64(sum[:])
	if computed := xxhash.Sum64(payload); computed != expected {
		return fmt.Errorf("%w: frame checksum mismatch (expected %d, got %d)",
			ErrCorrupted, expected, computed)
	}

	switch out := v.(type) {
	case *[]byte:
		*out = payload
	case encoding.BinaryUnmarshaler:
		return out.UnmarshalBinary(payload)
	default:
		return fmt.Errorf("binary serializer: unsupported value type %T", v)
	}
	return nil
}

func (s *binaryDecodeStream) Close() error { return nil }
