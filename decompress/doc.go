// Package decompress wraps compressed streams so that their logical
// content can be checksummed.
//
// Supported framings are zstd (github.com/klauspost/compress/zstd) and the
// LZ4 frame format (github.com/pierrec/lz4/v4). Auto detects either one
// from the stream's magic number and passes anything else through.
package decompress
