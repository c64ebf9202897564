package compression

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamRoundTrip(t *testing.T) {
	// Repetitive input so real codecs actually shrink it.
	src := bytes.Repeat([]byte("segment payload block "), 2048)

	for _, codex := range []Codex{CodexNone, CodexZstd, CodexLZ4, CodexS2} {
		t.Run(codex.String(), func(t *testing.T) {
			var compressed bytes.Buffer
			w, err := NewWriter(codex, CompressionDefault, &compressed)
			require.NoError(t, err)

			// Split across two writes with a Flush between them: flushed
			// bytes must still decompress as one stream.
			half := len(src) / 2
			_, err = w.Write(src[:half])
			require.NoError(t, err)
			require.NoError(t, w.Flush())
			_, err = w.Write(src[half:])
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if codex != CodexNone {
				require.Less(t, compressed.Len(), len(src))
			}

			r, err := NewReader(codex, bytes.NewReader(compressed.Bytes()))
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, src, got)
		})
	}
}

func TestWriterCloseLeavesUnderlyingOpen(t *testing.T) {
	var sink bytes.Buffer
	w, err := NewWriter(CodexZstd, CompressionSpeed, &sink)
	require.NoError(t, err)

	_, err = w.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// The pipeline owns the sink: writing after the codec closed must
	// still work.
	_, err = sink.Write([]byte("suffix"))
	require.NoError(t, err)
}

func TestParseCodex(t *testing.T) {
	for name, want := range map[string]Codex{
		"none": CodexNone,
		"":     CodexNone,
		"zstd": CodexZstd,
		"lz4":  CodexLZ4,
		"s2":   CodexS2,
	} {
		got, err := ParseCodex(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseCodex("gzip")
	require.ErrorIs(t, err, ErrUnsupportedCodex)
}

func TestUnknownCodex(t *testing.T) {
	_, err := NewWriter(Codex(99), CompressionDefault, io.Discard)
	require.ErrorIs(t, err, ErrUnsupportedCodex)

	_, err = NewReader(Codex(99), bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrUnsupportedCodex)
}
