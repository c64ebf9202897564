package segfile

import "io"

// SerializeStream writes a sequence of values to an underlying sink.
// Flush must push any internally buffered bytes down to the sink; Close
// releases encoder state but never closes the sink.
type SerializeStream interface {
	WriteObject(v any) error
	Flush() error
	Close() error
}

// DeserializeStream reads back a sequence of values produced by the
// matching SerializeStream. ReadObject returns io.EOF once the stream
// is exhausted.
type DeserializeStream interface {
	ReadObject(v any) error
	Close() error
}

// Serializer is the serialization transform layered on top of a segment
// writer's pipeline. Implementations must be usable for any number of
// independent streams.
type Serializer interface {
	SerializeStream(w io.Writer) SerializeStream
	DeserializeStream(r io.Reader) DeserializeStream
}
