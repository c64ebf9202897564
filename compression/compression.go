package compression

import (
	"errors"
	"io"
)

type Codex uint8
type Level uint8

const (
	CodexNone Codex = iota
	CodexZstd
	CodexLZ4
	CodexS2
)

const (
	CompressionDefault Level = iota
	CompressionSpeed
	CompressionBest
)

// ErrUnsupportedCodex is returned for codec values this build does not know.
var ErrUnsupportedCodex = errors.New("unsupported codec")

// Writer is a streaming compressor. Close finishes the compression frame
// but never closes the underlying writer; the caller owns that.
type Writer interface {
	io.WriteCloser

	// Flush pushes any partially accumulated block to the underlying
	// writer without ending the frame.
	Flush() error
}

// NewWriter layers a streaming compressor of the given codec over w.
// CodexNone returns a passthrough.
func NewWriter(codex Codex, level Level, w io.Writer) (Writer, error) {
	switch codex {
	case CodexNone:
		return nopWriter{w}, nil
	case CodexZstd:
		return newZstdWriter(w, level), nil
	case CodexLZ4:
		return newLZ4Writer(w, level)
	case CodexS2:
		return newS2Writer(w, level), nil
	default:
		return nil, ErrUnsupportedCodex
	}
}

// NewReader layers a streaming decompressor of the given codec over r.
func NewReader(codex Codex, r io.Reader) (io.ReadCloser, error) {
	switch codex {
	case CodexNone:
		return io.NopCloser(r), nil
	case CodexZstd:
		return newZstdReader(r), nil
	case CodexLZ4:
		return newLZ4Reader(r), nil
	case CodexS2:
		return newS2Reader(r), nil
	default:
		return nil, ErrUnsupportedCodex
	}
}

// ParseCodex maps a codec name to its Codex value.
func ParseCodex(name string) (Codex, error) {
	switch name {
	case "none", "":
		return CodexNone, nil
	case "zstd":
		return CodexZstd, nil
	case "lz4":
		return CodexLZ4, nil
	case "s2":
		return CodexS2, nil
	default:
		return CodexNone, ErrUnsupportedCodex
	}
}

func (c Codex) String() string {
	switch c {
	case CodexNone:
		return "none"
	case CodexZstd:
		return "zstd"
	case CodexLZ4:
		return "lz4"
	case CodexS2:
		return "s2"
	default:
		return "unknown"
	}
}

// nopWriter is the CodexNone passthrough
type nopWriter struct {
	io.Writer
}

func (nopWriter) Flush() error { return nil }
func (nopWriter) Close() error { return nil }
