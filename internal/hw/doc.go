// Package hw implements the instruction-driven CRC32C engine.
//
// # Supported Platforms
//
//   - x86-64: SSE4.2 CRC32 (CRC32Q / CRC32B)
//   - ARM64: ARMv8 CRC32 extension (CRC32CX / CRC32CB)
//
// Update consumes the input eight bytes at a time with the CPU instruction
// and finishes the remainder byte by byte. Like the table engine it works on
// the raw CRC register; inversion is left to the caller.
//
// Update must only be called after the capability package has confirmed the
// instruction is present. Build with -tags noasm to compile the package
// without assembly; Compiled is then false and Update panics.
//
// Emulate mirrors the word loop in portable Go with a bit-serial CRC step,
// so the accelerated control flow can be cross-checked against the table
// engine on any host.
package hw
