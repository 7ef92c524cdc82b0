package scrub

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting scrub metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordScrub is called after each blob is read. bytes is the number
	// of bytes checksummed, err is nil if the blob was read completely.
	RecordScrub(bytes int64, duration time.Duration, err error)

	// RecordCorruption is called when a verified blob has bad blocks.
	RecordCorruption(badBlocks uint64)

	// RecordThrottle is called with the time spent waiting on the rate limiter.
	RecordThrottle(wait time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordScrub(int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordCorruption(uint64)                 {}
func (NoopMetricsCollector) RecordThrottle(time.Duration)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	ScrubCount      atomic.Int64
	ScrubErrors     atomic.Int64
	ScrubBytes      atomic.Int64
	ScrubTotalNanos atomic.Int64
	CorruptBlobs    atomic.Int64
	CorruptBlocks   atomic.Int64
	ThrottleNanos   atomic.Int64
}

// RecordScrub implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScrub(bytes int64, duration time.Duration, err error) {
	b.ScrubCount.Add(1)
	b.ScrubBytes.Add(bytes)
	b.ScrubTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScrubErrors.Add(1)
	}
}

// RecordCorruption implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCorruption(badBlocks uint64) {
	b.CorruptBlobs.Add(1)
	b.CorruptBlocks.Add(int64(badBlocks))
}

// RecordThrottle implements MetricsCollector.
func (b *BasicMetricsCollector) RecordThrottle(wait time.Duration) {
	b.ThrottleNanos.Add(wait.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ScrubCount:     b.ScrubCount.Load(),
		ScrubErrors:    b.ScrubErrors.Load(),
		ScrubBytes:     b.ScrubBytes.Load(),
		ScrubAvgNanos:  b.getAvgScrubNanos(),
		CorruptBlobs:   b.CorruptBlobs.Load(),
		CorruptBlocks:  b.CorruptBlocks.Load(),
		ThrottledNanos: b.ThrottleNanos.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgScrubNanos() int64 {
	count := b.ScrubCount.Load()
	if count == 0 {
		return 0
	}
	return b.ScrubTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ScrubCount     int64
	ScrubErrors    int64
	ScrubBytes     int64
	ScrubAvgNanos  int64
	CorruptBlobs   int64
	CorruptBlocks  int64
	ThrottledNanos int64
}
