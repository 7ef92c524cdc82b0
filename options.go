package crc32c

import "runtime"

// DefaultChunkSize is the default span each parallel worker checksums.
const DefaultChunkSize = 1 << 20

type options struct {
	chunkSize   int
	concurrency int
}

// Option configures the parallel checksum functions.
type Option func(*options)

// WithChunkSize sets the number of bytes each worker checksums at a time.
//
// Smaller chunks spread short inputs across more workers; each chunk adds
// one Combine step.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithConcurrency bounds the number of chunks checksummed at once.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func applyOptions(opts []Option) (options, error) {
	o := options{
		chunkSize:   DefaultChunkSize,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.chunkSize <= 0 {
		return o, ErrInvalidChunkSize
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o, nil
}
