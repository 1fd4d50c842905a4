package compression

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies a compression container.
type Format int

const (
	// Plain is uncompressed data.
	Plain Format = iota
	// Bzip2 is a bzip2 stream.
	Bzip2
	// Gzip is a gzip member stream.
	Gzip
	// Zstd is a Zstandard frame stream.
	Zstd
	// LZ4 is an LZ4 frame stream.
	LZ4
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case Bzip2:
		return "bzip2"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

var (
	magicBzip2 = []byte("BZh")
	magicGzip  = []byte{0x1f, 0x8b}
	magicZstd  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4   = []byte{0x04, 0x22, 0x4d, 0x18}
)

// magicLen is the longest magic prefix.
const magicLen = 4

// Detect returns the format whose magic bytes prefix header.
func Detect(header []byte) Format {
	switch {
	case bytes.HasPrefix(header, magicZstd):
		return Zstd
	case bytes.HasPrefix(header, magicLZ4):
		return LZ4
	case bytes.HasPrefix(header, magicGzip):
		return Gzip
	case bytes.HasPrefix(header, magicBzip2):
		return Bzip2
	default:
		return Plain
	}
}

// NewReader detects the format of r and returns a reader yielding the
// decompressed bytes. Closing the returned reader releases decoder resources;
// it does not close r.
func NewReader(r io.Reader) (io.ReadCloser, Format, error) {
	br := bufio.NewReader(r)

	header, err := br.Peek(magicLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, Plain, err
	}

	f := Detect(header)
	switch f {
	case Bzip2:
		return io.NopCloser(bzip2.NewReader(br)), f, nil
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("gzip: %w", err)
		}
		return zr, f, nil
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("zstd: %w", err)
		}
		return zr.IOReadCloser(), f, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(br)), f, nil
	default:
		return io.NopCloser(br), f, nil
	}
}
