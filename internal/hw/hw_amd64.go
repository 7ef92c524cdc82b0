//go:build amd64 && !noasm

package hw

// Compiled reports whether an assembly engine is built for this target.
const Compiled = true

// Update feeds p through the CRC register crc using SSE4.2 CRC32.
//
//go:noescape
func Update(crc uint32, p []byte) uint32
