package crc32c

// Size is the size of a CRC32C checksum in bytes.
const Size = 4

// InitialSeed is the CRC register value of an empty prefix.
const InitialSeed uint32 = 0xFFFFFFFF

// Compute feeds p through a CRC register initialised to seed and returns
// the finalised checksum.
//
// Pass InitialSeed for a fresh checksum. To continue from a previous
// checksum c, pass ^c (or use Update).
func Compute(seed uint32, p []byte) uint32 {
	return ^active().update(seed, p)
}

// Update returns the checksum of the concatenation of the data summarised
// by crc and p. A crc of 0 starts a new checksum.
func Update(crc uint32, p []byte) uint32 {
	return ^active().update(^crc, p)
}

// Checksum returns the CRC32C checksum of p.
func Checksum(p []byte) uint32 {
	return ^active().update(InitialSeed, p)
}

// Verify reports whether p has the given checksum.
func Verify(p []byte, expected uint32) bool {
	return Checksum(p) == expected
}
