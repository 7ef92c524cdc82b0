package scrub

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/crc32c"
	"github.com/hupe1980/crc32c/blobstore"
	"github.com/hupe1980/crc32c/blocks"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Result describes one scrubbed blob.
type Result struct {
	Name     string
	Size     int64
	Checksum uint32
	Blocks   *blocks.Set
	Elapsed  time.Duration
}

// Scrubber reads blobs from a store and checksums them.
// It is safe for concurrent use.
type Scrubber struct {
	store   blobstore.Store
	opts    options
	limiter *rate.Limiter
}

// New creates a Scrubber over store.
func New(store blobstore.Store, opts ...Option) *Scrubber {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = crc32c.NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	if o.concurrency <= 0 {
		o.concurrency = 1
	}

	s := &Scrubber{store: store, opts: o}
	if o.bytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(o.bytesPerSec), int(min(o.bytesPerSec, int64(maxBurst))))
	}
	return s
}

const maxBurst = 1 << 30

// Checksum reads the named blob and returns its block set and checksum.
func (s *Scrubber) Checksum(ctx context.Context, name string) (*Result, error) {
	return s.scrub(ctx, name, s.opts.blockSize)
}

// Verify reads the named blob and compares it with expected. A mismatch
// returns the result together with a *CorruptionError.
func (s *Scrubber) Verify(ctx context.Context, name string, expected *blocks.Set) (*Result, error) {
	res, err := s.scrub(ctx, name, expected.BlockSize)
	if err != nil {
		return nil, err
	}

	bad, err := blocks.Diff(expected, res.Blocks)
	if err != nil {
		return res, fmt.Errorf("scrub: %s: %w", name, err)
	}
	if bad.IsEmpty() {
		return res, nil
	}

	count := bad.GetCardinality()
	s.opts.metrics.RecordCorruption(count)
	s.opts.logger.LogCorruption(ctx, name, expected.BlockSize, count, bad.Minimum())
	return res, &CorruptionError{
		Name:      name,
		BlockSize: expected.BlockSize,
		BadBlocks: bad,
	}
}

// All checksums every blob under prefix. Results are returned in List order.
// The first error cancels the remaining work.
func (s *Scrubber) All(ctx context.Context, prefix string) ([]*Result, error) {
	names, err := s.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)
	for i, name := range names {
		g.Go(func() error {
			res, err := s.Checksum(gctx, name)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Scrubber) scrub(ctx context.Context, name string, blockSize int) (res *Result, err error) {
	if s.opts.readSize <= 0 {
		return nil, ErrInvalidReadSize
	}
	builder, err := blocks.NewBuilder(blockSize)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		s.opts.metrics.RecordScrub(builder.Len(), elapsed, err)
		var sum uint32
		if res != nil {
			res.Elapsed = elapsed
			sum = res.Checksum
		}
		s.opts.logger.LogScrub(ctx, name, builder.Len(), sum, elapsed, err)
	}()

	blob, err := s.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	w := crc32c.NewWriter(builder)
	size := blob.Size()
	for off := int64(0); off < size; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := min(s.opts.readSize, size-off)
		if err := s.wait(ctx, n); err != nil {
			return nil, err
		}
		if err := s.copyRange(ctx, w, blob, off, n); err != nil {
			return nil, fmt.Errorf("scrub: %s at offset %d: %w", name, off, err)
		}
		off += n
	}

	set := builder.Finish()
	if total := set.Total(); total != w.Sum32() {
		return nil, fmt.Errorf("%w: %s: blocks fold to %08x, stream is %08x", ErrInconsistent, name, total, w.Sum32())
	}

	return &Result{
		Name:     name,
		Size:     size,
		Checksum: w.Sum32(),
		Blocks:   set,
	}, nil
}

func (s *Scrubber) copyRange(ctx context.Context, w io.Writer, blob blobstore.Blob, off, n int64) error {
	rc, err := blob.ReadRange(ctx, off, n)
	if err != nil {
		return err
	}
	defer rc.Close()

	copied, err := io.Copy(w, io.LimitReader(rc, n))
	if err != nil {
		return err
	}
	if copied != n {
		return fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, copied, n)
	}
	return nil
}

// wait blocks until n bytes may be read. WaitN rejects requests above the
// burst, so large reads are admitted in burst-sized steps.
func (s *Scrubber) wait(ctx context.Context, n int64) error {
	if s.limiter == nil {
		return nil
	}
	start := time.Now()
	burst := int64(s.limiter.Burst())
	for n > 0 {
		step := min(n, burst)
		if err := s.limiter.WaitN(ctx, int(step)); err != nil {
			return err
		}
		n -= step
	}
	s.opts.metrics.RecordThrottle(time.Since(start))
	return nil
}
