// Package main is the crc32c command line tool.
//
// Usage:
//
//	crc32c info
//	crc32c sum [-decompress fmt] [-parallel] [-rate N] SRC...
//	crc32c blocks [-block-size N] SRC
//	crc32c verify -expect HEX [-masked] SRC
//
// SRC is a local path, "-" for standard input, s3://bucket/key or
// minio://bucket/key.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/crc32c"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
	exitError    = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, e env, args []string) error
}

var commands = []command{
	{"info", "print CPU capabilities and the selected engine", runInfo},
	{"sum", "print the CRC32C of each source", runSum},
	{"blocks", "print per-block checksums of a source", runBlocks},
	{"verify", "compare a source against an expected checksum", runVerify},
}

// errMismatch makes run exit with exitMismatch.
var errMismatch = errors.New("checksum mismatch")

// errUsage makes run exit with exitUsage.
var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := env{stdin: stdin, stdout: stdout, stderr: stderr}
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}

	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		err := c.run(ctx, e, args[1:])
		switch {
		case err == nil:
			return exitOK
		case errors.Is(err, errMismatch):
			fmt.Fprintf(stderr, "crc32c %s: %v\n", c.name, err)
			return exitMismatch
		case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
			if err != errUsage && err != flag.ErrHelp {
				fmt.Fprintf(stderr, "crc32c %s: %v\n", c.name, err)
			}
			return exitUsage
		default:
			fmt.Fprintf(stderr, "crc32c %s: %v\n", c.name, err)
			return exitError
		}
	}

	fmt.Fprintf(stderr, "crc32c: unknown command %q\n", args[0])
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: crc32c <command> [options] [SRC...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(w, "\nSet %s=reference|accelerated to force an engine.\n", crc32c.EnvImpl)
}

// commonFlags are shared by every subcommand that reads sources.
type commonFlags struct {
	verbose       bool
	jsonLogs      bool
	minioEndpoint string
	minioInsecure bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "verbose logging to stderr")
	fs.BoolVar(&c.jsonLogs, "json", false, "log as JSON")
	fs.StringVar(&c.minioEndpoint, "minio-endpoint", os.Getenv("MINIO_ENDPOINT"), "MinIO endpoint for minio:// sources (host:port)")
	fs.BoolVar(&c.minioInsecure, "minio-insecure", false, "use plain HTTP for MinIO")
}

func (c *commonFlags) logger(stderr io.Writer) *crc32c.Logger {
	if !c.verbose {
		return crc32c.NoopLogger()
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if c.jsonLogs {
		return crc32c.NewLogger(slog.NewJSONHandler(stderr, opts))
	}
	return crc32c.NewLogger(slog.NewTextHandler(stderr, opts))
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parseFlags maps flag errors to errUsage. The flag set has already
// reported them.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	return nil
}
