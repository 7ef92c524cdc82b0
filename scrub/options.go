package scrub

import (
	"github.com/hupe1980/crc32c"
	"github.com/hupe1980/crc32c/blocks"
)

// DefaultReadSize is the default size of a single range read.
const DefaultReadSize = 4 << 20

type options struct {
	blockSize   int
	readSize    int64
	bytesPerSec int64
	concurrency int
	logger      *crc32c.Logger
	metrics     MetricsCollector
}

// Option configures a Scrubber.
type Option func(*options)

// WithBlockSize sets the block granularity used by Checksum.
// Verify always uses the block size of the recorded set.
func WithBlockSize(n int) Option {
	return func(o *options) {
		o.blockSize = n
	}
}

// WithReadSize sets the number of bytes requested per range read.
func WithReadSize(n int64) Option {
	return func(o *options) {
		o.readSize = n
	}
}

// WithRateLimit caps read throughput in bytes per second.
// Values <= 0 disable throttling.
func WithRateLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.bytesPerSec = bytesPerSec
	}
}

// WithConcurrency bounds the number of blobs All scrubs at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger sets the logger. Defaults to crc32c.NoopLogger.
func WithLogger(l *crc32c.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func defaultOptions() options {
	return options{
		blockSize:   blocks.DefaultBlockSize,
		readSize:    DefaultReadSize,
		concurrency: 1,
		logger:      crc32c.NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
}
