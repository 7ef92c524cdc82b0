package hw

import "encoding/binary"

const castagnoli = 0x82F63B78

// Emulate runs the same word-then-tail loop as Update, with each
// instruction replaced by a bit-serial software step.
func Emulate(crc uint32, p []byte) uint32 {
	for len(p) >= 8 {
		crc = crc32Word(crc, binary.LittleEndian.Uint64(p))
		p = p[8:]
	}
	for _, b := range p {
		crc = crc32Byte(crc, b)
	}
	return crc
}

// crc32Word matches CRC32Q/CRC32CX: the word is consumed least
// significant byte first.
func crc32Word(crc uint32, w uint64) uint32 {
	for i := 0; i < 8; i++ {
		crc = crc32Byte(crc, byte(w))
		w >>= 8
	}
	return crc
}

// crc32Byte matches CRC32B/CRC32CB.
func crc32Byte(crc uint32, b byte) uint32 {
	crc ^= uint32(b)
	for k := 0; k < 8; k++ {
		crc = (crc >> 1) ^ (castagnoli & -(crc & 1))
	}
	return crc
}
