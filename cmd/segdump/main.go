package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/miretskiy/segfile"
	"github.com/miretskiy/segfile/compression"
)

func main() {
	// Define flags
	path := flag.String("path", "", "Path to segment file (required)")
	offset := flag.Int64("offset", 0, "Byte offset of the committed segment")
	length := flag.Int64("length", -1, "Byte length of the committed segment (-1 = to end of file)")
	codec := flag.String("codec", "none", "Compression codec: none, zstd, lz4, s2")
	format := flag.String("format", "binary", "Serialization format: binary, msgpack")
	flag.Parse()

	// Validate required flags
	if *path == "" {
		fmt.Fprintln(os.Stderr, "Error: --path is required")
		flag.Usage()
		os.Exit(1)
	}

	codex, err := compression.ParseCodex(*codec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown codec %q\n", *codec)
		os.Exit(1)
	}

	var ser segfile.Serializer
	switch *format {
	case "binary":
		ser = segfile.BinarySerializer{}
	case "msgpack":
		ser = segfile.MsgpackSerializer{}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use binary or msgpack)\n", *format)
		os.Exit(1)
	}

	seg := segfile.Segment{Path: *path, Offset: *offset, Length: *length}
	if seg.Length < 0 {
		info, err := os.Stat(*path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		seg.Length = info.Size() - seg.Offset
	}

	r, err := segfile.OpenSegment(seg, codex, ser)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	for i := 0; ; i++ {
		var err error
		switch *format {
		case "binary":
			var payload []byte
			if err = r.ReadObject(&payload); err == nil {
				fmt.Printf("%d: %d bytes: %q\n", i, len(payload), payload)
			}
		case "msgpack":
			var v any
			if err = r.ReadObject(&v); err == nil {
				fmt.Printf("%d: %v\n", i, v)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Printf("%d records\n", i)
				return
			}
			fmt.Fprintf(os.Stderr, "Error reading record %d: %v\n", i, err)
			os.Exit(1)
		}
	}
}
