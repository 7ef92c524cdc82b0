package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/crc32c"
	"github.com/hupe1980/crc32c/blobstore"
	"github.com/hupe1980/crc32c/blocks"
	"github.com/hupe1980/crc32c/decompress"
	"github.com/hupe1980/crc32c/internal/hw"
	"github.com/hupe1980/crc32c/scrub"
)

func runInfo(_ context.Context, e env, args []string) error {
	fs := newFlagSet("info", e.stderr)
	var common commonFlags
	common.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	crc32c.SetLogger(common.logger(e.stderr))

	info := crc32c.Selected()
	caps := info.Capabilities
	features := strings.Join(caps.Features(), " ")
	if features == "" {
		features = "none"
	}

	fmt.Fprintf(e.stdout, "arch:        %s\n", caps.Arch)
	fmt.Fprintf(e.stdout, "cpu:         %s\n", orUnknown(caps.CPU))
	fmt.Fprintf(e.stdout, "vendor:      %s\n", orUnknown(caps.Vendor))
	fmt.Fprintf(e.stdout, "features:    %s\n", features)
	fmt.Fprintf(e.stdout, "asm:         %t\n", hw.Compiled)
	fmt.Fprintf(e.stdout, "engine:      %s\n", info.Impl)
	fmt.Fprintf(e.stdout, "overridden:  %t\n", info.Overridden)
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// sumFlags select how a source is read.
type sumFlags struct {
	commonFlags
	format   string
	parallel bool
	rate     int64
}

func (s *sumFlags) register(fs *flag.FlagSet) {
	s.commonFlags.register(fs)
	fs.StringVar(&s.format, "decompress", "none", "decompress before checksumming: none, zstd, lz4, auto")
	fs.BoolVar(&s.parallel, "parallel", false, "checksum memory-mapped sources in parallel chunks")
	fs.Int64Var(&s.rate, "rate", 0, "read rate limit in bytes per second (0 = unlimited)")
}

func runSum(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("sum", e.stderr)
	var flags sumFlags
	flags.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(e.stderr, "Usage: crc32c sum [options] SRC...")
		fs.PrintDefaults()
		return errUsage
	}

	for _, arg := range fs.Args() {
		sum, err := flags.checksum(ctx, e, arg)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		fmt.Fprintf(e.stdout, "%08x  %s\n", sum, arg)
	}
	return nil
}

// checksum computes the CRC32C of a single source.
func (s *sumFlags) checksum(ctx context.Context, e env, arg string) (uint32, error) {
	format, err := decompress.ParseFormat(s.format)
	if err != nil {
		return 0, err
	}
	src, err := parseSource(arg)
	if err != nil {
		return 0, err
	}
	log := s.logger(e.stderr)
	crc32c.SetLogger(log)

	store, name, err := s.open(ctx, src, e.stdin)
	if err != nil {
		return 0, err
	}

	if format != decompress.None {
		return checksumDecompressed(ctx, store, name, format)
	}

	if s.parallel {
		blob, err := store.Open(ctx, name)
		if err != nil {
			return 0, err
		}
		defer blob.Close()
		if m, ok := blob.(blobstore.Mappable); ok {
			data, err := m.Bytes()
			if err != nil {
				return 0, err
			}
			return crc32c.ChecksumParallel(ctx, data)
		}
	}

	res, err := scrub.New(store, scrub.WithRateLimit(s.rate), scrub.WithLogger(log)).Checksum(ctx, name)
	if err != nil {
		return 0, err
	}
	return res.Checksum, nil
}

func checksumDecompressed(ctx context.Context, store blobstore.Store, name string, format decompress.Format) (uint32, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return 0, err
	}
	defer blob.Close()

	raw, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return 0, err
	}
	defer raw.Close()

	dec, err := decompress.NewReader(raw, format)
	if err != nil {
		return 0, err
	}
	defer dec.Close()

	r := crc32c.NewReader(dec)
	if _, err := io.Copy(io.Discard, r); err != nil {
		return 0, err
	}
	return r.Sum32(), nil
}

func runBlocks(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("blocks", e.stderr)
	var common commonFlags
	common.register(fs)
	blockSize := fs.Int("block-size", blocks.DefaultBlockSize, "checksum block size in bytes")
	rate := fs.Int64("rate", 0, "read rate limit in bytes per second (0 = unlimited)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(e.stderr, "Usage: crc32c blocks [options] SRC")
		fs.PrintDefaults()
		return errUsage
	}

	src, err := parseSource(fs.Arg(0))
	if err != nil {
		return err
	}
	log := common.logger(e.stderr)
	crc32c.SetLogger(log)
	store, name, err := common.open(ctx, src, e.stdin)
	if err != nil {
		return err
	}

	res, err := scrub.New(store,
		scrub.WithBlockSize(*blockSize),
		scrub.WithRateLimit(*rate),
		scrub.WithLogger(log),
	).Checksum(ctx, name)
	if err != nil {
		return err
	}

	set := res.Blocks
	for i, sum := range set.Sums {
		fmt.Fprintf(e.stdout, "%d\t%d\t%08x\n", i, set.BlockLen(i), sum)
	}
	fmt.Fprintf(e.stdout, "total\t%d\t%08x\n", set.Length, res.Checksum)
	return nil
}

func runVerify(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("verify", e.stderr)
	var flags sumFlags
	flags.register(fs)
	expect := fs.String("expect", "", "expected checksum in hex")
	masked := fs.Bool("masked", false, "the expected checksum is masked (LevelDB/RocksDB style)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *expect == "" {
		fmt.Fprintln(e.stderr, "Usage: crc32c verify -expect HEX [options] SRC")
		fs.PrintDefaults()
		return errUsage
	}

	want, err := parseHex(*expect)
	if err != nil {
		return err
	}
	if *masked {
		want = crc32c.Unmask(want)
	}

	got, err := flags.checksum(ctx, e, fs.Arg(0))
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: %s", errMismatch, &crc32c.ErrChecksumMismatch{Expected: want, Actual: got})
	}
	fmt.Fprintf(e.stdout, "OK  %s\n", fs.Arg(0))
	return nil
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid checksum %q: %w", s, err)
	}
	return uint32(v), nil
}
