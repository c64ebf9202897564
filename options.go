package segfile

import (
	"errors"
	"os"

	"github.com/miretskiy/segfile/compression"
)

// config holds internal configuration
type config struct {
	BufferSize int
	Codex      compression.Codex
	Level      compression.Level
	Serializer Serializer
	SyncWrites bool
	FileMode   os.FileMode
}

// Option configures a SegmentWriter
type Option interface {
	apply(*config)
}

// funcOpt wraps a function as an Option
type funcOpt func(*config)

func (f funcOpt) apply(c *config) {
	f(c)
}

// WithBufferSize sets the in-memory buffer size between the serialization
// and compression layers (default: 32 KiB)
func WithBufferSize(n int) Option {
	return funcOpt(func(c *config) {
		c.BufferSize = n
	})
}

// WithCompression selects the stream codec applied below the buffer
// (default: CodexNone)
func WithCompression(codex compression.Codex, level compression.Level) Option {
	return funcOpt(func(c *config) {
		c.Codex = codex
		c.Level = level
	})
}

// WithSerializer sets the serialization transform (default: GobSerializer)
func WithSerializer(s Serializer) Option {
	return funcOpt(func(c *config) {
		c.Serializer = s
	})
}

// WithSyncWrites forces file data to stable storage during commit
// (default: false). The sync blocks the caller and its duration is added
// to the writer's elapsed write time.
func WithSyncWrites(enabled bool) Option {
	return funcOpt(func(c *config) {
		c.SyncWrites = enabled
	})
}

// WithFileMode sets the mode used when the backing file is created
// (default: 0o644)
func WithFileMode(mode os.FileMode) Option {
	return funcOpt(func(c *config) {
		c.FileMode = mode
	})
}

// Common errors
var (
	ErrClosed      = errors.New("segment writer is closed")
	ErrAlreadyOpen = errors.New("segment writer is already open")
	ErrCorrupted   = errors.New("data corruption detected")
)

// defaultConfig returns sensible defaults
func defaultConfig() config {
	return config{
		BufferSize: 32 * 1024,
		Codex:      compression.CodexNone,
		Level:      compression.CompressionDefault,
		Serializer: GobSerializer{},
		SyncWrites: false,
		FileMode:   0o644,
	}
}
