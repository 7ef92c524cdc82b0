// Package crc32c computes CRC32C (Castagnoli) checksums for data integrity.
//
// Two engines produce bit-identical results: a portable slicing-by-8 table
// engine and an engine driven by the CPU's CRC32 instruction (SSE4.2 on
// x86-64, the CRC32 extension on ARM64). The fastest engine available on
// the executing CPU is selected once, on first use, and stays bound for the
// life of the process.
//
// # Quick Start
//
// One-shot checksums:
//
//	sum := crc32c.Checksum(data)
//
// Incremental checksums:
//
//	crc := crc32c.Update(0, chunk1)
//	crc = crc32c.Update(crc, chunk2)
//
// Explicit register seeds:
//
//	sum := crc32c.Compute(crc32c.InitialSeed, data)
//
// Streaming:
//
//	h := crc32c.New()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	sum := h.Sum32()
//
// # Combining Checksums
//
// Checksums of independently processed pieces can be merged without
// re-reading the data, which is what partial writes and scatter/gather I/O
// need:
//
//	whole := crc32c.Combine(crc32c.Checksum(a), crc32c.Checksum(b), uint64(len(b)))
//
// ExtendByZeros appends a run of zero bytes in O(log n):
//
//	padded := crc32c.ExtendByZeros(sum, 4096)
//
// ChecksumParallel and ChecksumReaderAt use Combine to checksum large
// inputs on several cores.
//
// # Engine Selection
//
// Selected reports the bound engine. Setting CRC32C_IMPL=reference (or
// accelerated) forces an engine; an override naming an engine the CPU
// cannot run is ignored. Build with -tags noasm to exclude the assembly
// engine entirely.
package crc32c
