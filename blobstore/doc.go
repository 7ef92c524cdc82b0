// Package blobstore abstracts the places checksummed bytes live.
//
// A Store opens immutable blobs by name; a Blob serves byte ranges. The
// scrubber reads blobs range by range, so remote stores only ever issue
// bounded GET requests, while local blobs are memory-mapped and expose
// their bytes directly through Mappable.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, mmap-backed
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 via aws-sdk-go-v2
//   - minio.Store: MinIO and other S3-compatible services via minio-go
//
// Stores are read-only: this module computes checksums, it does not
// persist them.
package blobstore
