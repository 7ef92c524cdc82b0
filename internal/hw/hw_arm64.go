//go:build arm64 && !noasm

package hw

// Compiled reports whether an assembly engine is built for this target.
const Compiled = true

// Update feeds p through the CRC register crc using the ARMv8 CRC32C
// instructions.
//
//go:noescape
func Update(crc uint32, p []byte) uint32
