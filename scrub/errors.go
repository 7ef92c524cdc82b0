package scrub

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrCorrupt is returned when a blob does not match its recorded blocks.
	ErrCorrupt = errors.New("scrub: blob is corrupt")

	// ErrInconsistent is returned when the streamed checksum and the
	// folded block checksums disagree. It indicates a read that changed
	// under the scrubber.
	ErrInconsistent = errors.New("scrub: inconsistent checksums")

	// ErrShortRead is returned when a range read ends early.
	ErrShortRead = errors.New("scrub: short read")

	// ErrInvalidReadSize is returned for a non-positive read size.
	ErrInvalidReadSize = errors.New("scrub: read size must be positive")
)

// CorruptionError describes the damaged blocks of a blob.
type CorruptionError struct {
	Name      string
	BlockSize int
	BadBlocks *roaring.Bitmap
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("scrub: %s: %d corrupt blocks of %d bytes (first %d)",
		e.Name, e.BadBlocks.GetCardinality(), e.BlockSize, e.BadBlocks.Minimum())
}

func (e *CorruptionError) Unwrap() error {
	return ErrCorrupt
}
