// Package blocks computes CRC32C checksums at a fixed block granularity.
//
// Storing one checksum per block (rather than one per object) lets a reader
// verify a sub-range without touching the rest of the object, and lets a
// scrubber report exactly which blocks are damaged. The whole-object
// checksum is derived from the block checksums with crc32c.Combine, so it
// never requires a second pass over the data.
//
// Mismatching block indices are returned as a roaring bitmap, which stays
// compact for both sparse bit flips and long damaged runs.
package blocks
