package crc32c

// maskDelta is the LevelDB/RocksDB masking constant.
const maskDelta = 0xa282ead8

// Mask returns a masked representation of crc.
//
// Computing the checksum of data that embeds its own checksum is
// problematic, so checksums stored alongside the data they cover are
// usually masked first.
func Mask(crc uint32) uint32 {
	return ((crc >> 15) | (crc << 17)) + maskDelta
}

// Unmask returns the checksum whose masked representation is masked.
func Unmask(masked uint32) uint32 {
	rot := masked - maskDelta
	return (rot >> 17) | (rot << 15)
}
