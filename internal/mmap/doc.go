// Package mmap provides read-only memory-mapped file access.
//
// Checksumming a mapped file hands the kernel's page cache straight to the
// CRC engine: no read buffers, no copies. Regions expose sub-ranges of a
// mapping so block checksums can be computed over views of one file.
//
// # Usage
//
//	m, err := mmap.Open("object.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	sum := crc32c.Checksum(m.Bytes())
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile; Advise is a no-op
//
// Mapping and Region are safe for concurrent reads. Close is idempotent,
// but callers must stop using Bytes() before calling it.
package mmap
