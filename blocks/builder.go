package blocks

import "github.com/hupe1980/crc32c"

// Builder accumulates block checksums from a stream of writes.
type Builder struct {
	blockSize int
	length    int64
	sums      []uint32
	cur       uint32 // checksum of the partial block
	curLen    int
}

// NewBuilder returns a Builder with the given block size.
func NewBuilder(blockSize int) (*Builder, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}
	return &Builder{blockSize: blockSize}, nil
}

// Write implements io.Writer. It never fails.
func (b *Builder) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		take := min(b.blockSize-b.curLen, len(p))
		b.cur = crc32c.Update(b.cur, p[:take])
		b.curLen += take
		p = p[take:]
		if b.curLen == b.blockSize {
			b.sums = append(b.sums, b.cur)
			b.cur, b.curLen = 0, 0
		}
	}
	b.length += int64(n)
	return n, nil
}

// Len returns the number of bytes written.
func (b *Builder) Len() int64 {
	return b.length
}

// Finish returns the completed set, including any short trailing block.
// The builder may keep being written to afterwards.
func (b *Builder) Finish() *Set {
	sums := make([]uint32, len(b.sums), len(b.sums)+1)
	copy(sums, b.sums)
	if b.curLen > 0 {
		sums = append(sums, b.cur)
	}
	return &Set{
		BlockSize: b.blockSize,
		Length:    b.length,
		Sums:      sums,
	}
}
