package segfile

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackSerializer streams values as a concatenated sequence of
// MessagePack objects. Useful when committed segments are read by
// non-Go consumers.
type MsgpackSerializer struct{}

func (MsgpackSerializer) SerializeStream(w io.Writer) SerializeStream {
	return &msgpackStream{enc: msgpack.NewEncoder(w)}
}

func (MsgpackSerializer) DeserializeStream(r io.Reader) DeserializeStream {
	return &msgpackStream{dec: msgpack.NewDecoder(r)}
}

type msgpackStream struct {
	enc *msgpack.Encoder
	dec *msgpack.Decoder
}

func (s *msgpackStream) WriteObject(v any) error {
	return s.enc.Encode(v)
}

func (s *msgpackStream) ReadObject(v any) error {
	return s.dec.Decode(v)
}

func (s *msgpackStream) Flush() error { return nil }
func (s *msgpackStream) Close() error { return nil }
