package crc32c

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChunkSize is returned when a parallel chunk size is not positive.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrNegativeSize is returned when a reader size is negative.
	ErrNegativeSize = errors.New("size must not be negative")
)

// ErrChecksumMismatch indicates that data did not match its expected checksum.
type ErrChecksumMismatch struct {
	Expected uint32
	Actual   uint32
}

func (e *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("crc32c mismatch: expected %08x, got %08x", e.Expected, e.Actual)
}
