package table

// Castagnoli is the reflected form of the CRC32C polynomial 0x1EDC6F41.
const Castagnoli = 0x82F63B78

// slicing8 holds the byte table in slot 0 and its seven shifted
// derivatives in slots 1..7.
type slicing8 [8][256]uint32

var tab = func() *slicing8 {
	t := new(slicing8)
	for i := uint32(0); i < 256; i++ {
		crc := i
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Castagnoli
			} else {
				crc >>= 1
			}
		}
		t[0][i] = crc
	}
	for i := 0; i < 256; i++ {
		crc := t[0][i]
		for j := 1; j < 8; j++ {
			crc = t[0][crc&0xff] ^ (crc >> 8)
			t[j][i] = crc
		}
	}
	return t
}()

// Update feeds p through the CRC register crc and returns the new register
// value. No inversion is applied.
func Update(crc uint32, p []byte) uint32 {
	t := tab
	for len(p) >= 8 {
		crc ^= uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
		crc = t[0][p[7]] ^ t[1][p[6]] ^ t[2][p[5]] ^ t[3][p[4]] ^
			t[4][crc>>24] ^ t[5][(crc>>16)&0xff] ^ t[6][(crc>>8)&0xff] ^ t[7][crc&0xff]
		p = p[8:]
	}
	for _, b := range p {
		crc = t[0][byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// UpdateBytewise is the single-table form of Update.
func UpdateBytewise(crc uint32, p []byte) uint32 {
	t := &tab[0]
	for _, b := range p {
		crc = t[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// Entry returns entry i of the byte table.
func Entry(i byte) uint32 {
	return tab[0][i]
}
