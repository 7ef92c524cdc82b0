package crc32c

import "github.com/hupe1980/crc32c/internal/table"

// x2n[k] holds x^(2^k) mod P in reflected form. Byte counts are scaled by
// eight bits, so a uint64 length needs exponents up to 2^66.
var x2n = func() [67]uint32 {
	var t [67]uint32
	p := uint32(1) << 30 // x^1
	t[0] = p
	for k := 1; k < len(t); k++ {
		p = multModP(p, p)
		t[k] = p
	}
	return t
}()

// multModP multiplies a and b modulo P in GF(2). Bit 31 is x^0 and a must
// be non-zero.
func multModP(a, b uint32) uint32 {
	m := uint32(1) << 31
	var p uint32
	for {
		if a&m != 0 {
			p ^= b
			if a&(m-1) == 0 {
				break
			}
		}
		m >>= 1
		if b&1 != 0 {
			b = (b >> 1) ^ table.Castagnoli
		} else {
			b >>= 1
		}
	}
	return p
}

// xPow8N returns x^(8n) mod P.
func xPow8N(n uint64) uint32 {
	p := uint32(1) << 31 // x^0
	for k := 3; n != 0; k++ {
		if n&1 != 0 {
			p = multModP(x2n[k], p)
		}
		n >>= 1
	}
	return p
}

// Combine returns the checksum of A‖B given crcA = Checksum(A),
// crcB = Checksum(B) and lenB = len(B). A is never read.
func Combine(crcA, crcB uint32, lenB uint64) uint32 {
	if lenB == 0 {
		return crcA
	}
	return multModP(xPow8N(lenB), crcA) ^ crcB
}

// ExtendByZeros returns the checksum of the data summarised by crc followed
// by n zero bytes, without materialising them.
func ExtendByZeros(crc uint32, n uint64) uint32 {
	if n == 0 {
		return crc
	}
	return ^multModP(xPow8N(n), ^crc)
}
