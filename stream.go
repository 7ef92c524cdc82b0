package crc32c

import "io"

// Writer wraps an io.Writer and computes a running CRC32C checksum of
// everything successfully written through it.
type Writer struct {
	w   io.Writer
	crc uint32
	n   int64
}

// NewWriter creates a new checksumming writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write implements io.Writer.
func (cw *Writer) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if n > 0 {
		cw.crc = Update(cw.crc, p[:n])
		cw.n += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of the bytes written so far.
func (cw *Writer) Sum32() uint32 {
	return cw.crc
}

// Len returns the number of bytes written so far.
func (cw *Writer) Len() int64 {
	return cw.n
}

// Reset resets the checksum to the initial state.
func (cw *Writer) Reset() {
	cw.crc = 0
	cw.n = 0
}

// Reader wraps an io.Reader and computes a running CRC32C checksum of
// everything read through it.
type Reader struct {
	r   io.Reader
	crc uint32
	n   int64
}

// NewReader creates a new checksumming reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader.
func (cr *Reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.crc = Update(cr.crc, p[:n])
		cr.n += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of the bytes read so far.
func (cr *Reader) Sum32() uint32 {
	return cr.crc
}

// Len returns the number of bytes read so far.
func (cr *Reader) Len() int64 {
	return cr.n
}

// Verify returns an *ErrChecksumMismatch if the bytes read so far do not
// match expected.
func (cr *Reader) Verify(expected uint32) error {
	if cr.crc != expected {
		return &ErrChecksumMismatch{Expected: expected, Actual: cr.crc}
	}
	return nil
}
