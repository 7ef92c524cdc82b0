// Package capability reports the CPU features relevant to CRC32C.
//
// Detection reads feature flags that golang.org/x/sys/cpu probes once at
// program start, so Detect is cheap, side-effect free and returns the same
// answer for the life of the process. A CPU that cannot be probed simply
// reports no acceleration.
package capability
