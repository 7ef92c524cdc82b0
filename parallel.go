package crc32c

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"
)

// ChecksumParallel computes Checksum(p) by checksumming fixed-size chunks
// concurrently and folding the results with Combine.
func ChecksumParallel(ctx context.Context, p []byte, opts ...Option) (uint32, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return 0, err
	}
	if len(p) <= o.chunkSize || o.concurrency == 1 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return Checksum(p), nil
	}

	n := (len(p) + o.chunkSize - 1) / o.chunkSize
	sums := make([]uint32, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := 0; i < n; i++ {
		start := i * o.chunkSize
		end := min(start+o.chunkSize, len(p))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sums[i] = Checksum(p[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return fold(sums, int64(len(p)), int64(o.chunkSize)), nil
}

// ChecksumReaderAt computes the checksum of the first size bytes of r,
// reading chunk-sized ranges concurrently.
func ChecksumReaderAt(ctx context.Context, r io.ReaderAt, size int64, opts ...Option) (uint32, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return 0, err
	}
	if size < 0 {
		return 0, ErrNegativeSize
	}
	if size == 0 {
		return 0, ctx.Err()
	}

	chunk := int64(o.chunkSize)
	n := int((size + chunk - 1) / chunk)
	sums := make([]uint32, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := 0; i < n; i++ {
		off := int64(i) * chunk
		length := min(chunk, size-off)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buf := make([]byte, length)
			m, err := r.ReadAt(buf, off)
			if err != nil && !(errors.Is(err, io.EOF) && int64(m) == length) {
				return err
			}
			sums[i] = Checksum(buf)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return fold(sums, size, chunk), nil
}

// fold combines per-chunk checksums; every chunk but the last is chunk
// bytes long.
func fold(sums []uint32, total, chunk int64) uint32 {
	crc := sums[0]
	for i := 1; i < len(sums); i++ {
		length := min(chunk, total-int64(i)*chunk)
		crc = Combine(crc, sums[i], uint64(length))
	}
	return crc
}
