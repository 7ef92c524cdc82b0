//go:build (!amd64 && !arm64) || noasm

package hw

// Compiled reports whether an assembly engine is built for this target.
const Compiled = false

// Update is unavailable on this target. The dispatcher never binds it.
func Update(uint32, []byte) uint32 {
	panic("hw: accelerated crc32c is not compiled for this target")
}
