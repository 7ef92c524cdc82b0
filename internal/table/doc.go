// Package table implements the portable, table-driven CRC32C engine.
//
// The engine operates on the raw CRC register: callers are responsible for
// the initial and final inversion. It is always available and serves as the
// correctness oracle for every accelerated path.
//
// # Algorithm
//
// Eight 256-entry tables are derived from the reflected Castagnoli
// polynomial (0x82F63B78) at package init. The hot loop folds eight input
// bytes per step (slicing-by-8); a bytewise loop handles the tail.
package table
