// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil { ... }
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "objects/")
//
//	res, err := scrub.New(store).Checksum(ctx, "segment-0001.bin")
//
// # Features
//
//   - Range reads, so scrubbing never buffers a whole object
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
