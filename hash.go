package crc32c

import "hash"

// digest implements hash.Hash32 on top of the dispatched engine.
type digest struct {
	seed uint32 // finalised checksum the digest was created from
	crc  uint32
}

// New returns a new hash.Hash32 computing the CRC32C checksum.
func New() hash.Hash32 {
	return &digest{}
}

// NewWithSeed returns a hash.Hash32 that continues from prev, the checksum
// of data already hashed elsewhere. Reset returns to prev.
func NewWithSeed(prev uint32) hash.Hash32 {
	return &digest{seed: prev, crc: prev}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = d.seed }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

// Sum appends the big-endian checksum to in.
func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
