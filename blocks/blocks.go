package blocks

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/crc32c"
)

// DefaultBlockSize is the default checksum granularity.
const DefaultBlockSize = 4096

var (
	// ErrInvalidBlockSize is returned when a block size is not positive.
	ErrInvalidBlockSize = errors.New("blocks: block size must be positive")

	// ErrGeometryMismatch is returned when two sets do not describe the
	// same block layout.
	ErrGeometryMismatch = errors.New("blocks: geometry mismatch")
)

// Set holds the checksum of every block of a byte sequence. The last block
// may be short.
type Set struct {
	BlockSize int
	Length    int64
	Sums      []uint32
}

// Compute checksums data in blocks of blockSize bytes.
func Compute(data []byte, blockSize int) (*Set, error) {
	b, err := NewBuilder(blockSize)
	if err != nil {
		return nil, err
	}
	_, _ = b.Write(data)
	return b.Finish(), nil
}

// NumBlocks returns the number of blocks covered by the set.
func (s *Set) NumBlocks() int {
	return len(s.Sums)
}

// BlockLen returns the length in bytes of block i.
func (s *Set) BlockLen(i int) int {
	if i < len(s.Sums)-1 {
		return s.BlockSize
	}
	return int(s.Length - int64(i)*int64(s.BlockSize))
}

// Validate checks that the set holds exactly one checksum per block.
func (s *Set) Validate() error {
	if s.BlockSize <= 0 {
		return ErrInvalidBlockSize
	}
	if s.Length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrGeometryMismatch, s.Length)
	}
	want := (s.Length + int64(s.BlockSize) - 1) / int64(s.BlockSize)
	if int64(len(s.Sums)) != want {
		return fmt.Errorf("%w: %d bytes in %d-byte blocks need %d checksums, have %d",
			ErrGeometryMismatch, s.Length, s.BlockSize, want, len(s.Sums))
	}
	return nil
}

// Total returns the checksum of the whole sequence.
func (s *Set) Total() uint32 {
	var crc uint32
	for i, sum := range s.Sums {
		crc = crc32c.Combine(crc, sum, uint64(s.BlockLen(i)))
	}
	return crc
}

// Verify checksums data and returns the indices of blocks that differ
// from s.
func (s *Set) Verify(data []byte) (*roaring.Bitmap, error) {
	actual, err := Compute(data, s.BlockSize)
	if err != nil {
		return nil, err
	}
	return Diff(s, actual)
}

// VerifyBlock reports whether p matches the stored checksum of block i.
func (s *Set) VerifyBlock(i int, p []byte) (bool, error) {
	if i < 0 || i >= len(s.Sums) {
		return false, fmt.Errorf("%w: block %d out of range [0,%d)", ErrGeometryMismatch, i, len(s.Sums))
	}
	if len(p) != s.BlockLen(i) {
		return false, fmt.Errorf("%w: block %d is %d bytes, got %d", ErrGeometryMismatch, i, s.BlockLen(i), len(p))
	}
	return crc32c.Checksum(p) == s.Sums[i], nil
}

// Diff returns the indices of blocks whose checksums differ between
// expected and actual.
func Diff(expected, actual *Set) (*roaring.Bitmap, error) {
	if err := expected.Validate(); err != nil {
		return nil, fmt.Errorf("expected: %w", err)
	}
	if err := actual.Validate(); err != nil {
		return nil, fmt.Errorf("actual: %w", err)
	}
	if expected.BlockSize != actual.BlockSize || expected.Length != actual.Length {
		return nil, fmt.Errorf("%w: expected %d bytes in %d-byte blocks, got %d bytes in %d-byte blocks",
			ErrGeometryMismatch, expected.Length, expected.BlockSize, actual.Length, actual.BlockSize)
	}
	bad := roaring.New()
	for i, sum := range expected.Sums {
		if actual.Sums[i] != sum {
			bad.Add(uint32(i))
		}
	}
	return bad, nil
}
