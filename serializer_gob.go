package segfile

import (
	"encoding/gob"
	"io"
)

// GobSerializer streams values with encoding/gob. Gob writes each value
// through to the sink as it is encoded, so Flush and Close are no-ops.
type GobSerializer struct{}

func (GobSerializer) SerializeStream(w io.Writer) SerializeStream {
	return &gobStream{enc: gob.NewEncoder(w)}
}

func (GobSerializer) DeserializeStream(r io.Reader) DeserializeStream {
	return &gobStream{dec: gob.NewDecoder(r)}
}

type gobStream struct {
	enc *gob.Encoder
	dec *gob.Decoder
}

func (s *gobStream) WriteObject(v any) error {
	return s.enc.Encode(v)
}

func (s *gobStream) ReadObject(v any) error {
	return s.dec.Decode(v)
}

func (s *gobStream) Flush() error { return nil }
func (s *gobStream) Close() error { return nil }
