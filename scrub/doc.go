// Package scrub re-reads stored blobs and checks them block by block.
//
// A Scrubber streams a blob from any blobstore.Store in bounded ranges,
// builds its per-block CRC32C set and compares it with a previously
// recorded one. Reads can be throttled to a byte rate so that scrubbing
// does not starve foreground IO.
//
//	s := scrub.New(store,
//	    scrub.WithRateLimit(64<<20),
//	    scrub.WithLogger(crc32c.NewTextLogger(slog.LevelInfo)),
//	)
//	res, err := s.Verify(ctx, "segment-0001.bin", recorded)
//	var corrupt *scrub.CorruptionError
//	if errors.As(err, &corrupt) {
//	    // corrupt.BadBlocks lists the damaged block indices
//	}
package scrub
