package decompress

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies a compression framing.
type Format uint8

const (
	// None passes the stream through unchanged.
	None Format = iota
	// Zstd is a zstd frame stream.
	Zstd
	// LZ4 is an LZ4 frame stream.
	LZ4
	// Auto sniffs the magic number and falls back to None.
	Auto
)

// ErrUnknownFormat is returned for an unrecognised format.
var ErrUnknownFormat = errors.New("decompress: unknown format")

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

func (f Format) String() string {
	switch f {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	case Auto:
		return "auto"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat parses a format name as printed by Format.String.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "raw":
		return None, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	case "auto":
		return Auto, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Detect returns the format whose magic number prefixes p, or None.
func Detect(p []byte) Format {
	switch {
	case bytes.HasPrefix(p, zstdMagic):
		return Zstd
	case bytes.HasPrefix(p, lz4Magic):
		return LZ4
	default:
		return None
	}
}

// NewReader returns a reader that yields the decompressed content of r.
// Closing it releases decoder resources but does not close r.
func NewReader(r io.Reader, f Format) (io.ReadCloser, error) {
	if f == Auto {
		br := bufio.NewReader(r)
		magic, err := br.Peek(len(zstdMagic))
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		f = Detect(magic)
		r = br
	}

	switch f {
	case None:
		return io.NopCloser(r), nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
