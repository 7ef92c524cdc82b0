package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/crc32c/blobstore"
	minioblob "github.com/hupe1980/crc32c/blobstore/minio"
	s3blob "github.com/hupe1980/crc32c/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type scheme int

const (
	schemeLocal scheme = iota
	schemeStdin
	schemeS3
	schemeMinio
)

// source is a parsed SRC argument.
type source struct {
	scheme scheme
	bucket string
	key    string
	path   string
}

var errBadSource = errors.New("invalid source")

func parseSource(s string) (source, error) {
	if s == "" {
		return source{}, fmt.Errorf("%w: empty", errBadSource)
	}
	if s == "-" {
		return source{scheme: schemeStdin, key: "-"}, nil
	}

	for prefix, sc := range map[string]scheme{"s3://": schemeS3, "minio://": schemeMinio} {
		rest, ok := strings.CutPrefix(s, prefix)
		if !ok {
			continue
		}
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return source{}, fmt.Errorf("%w: %q must be %sbucket/key", errBadSource, s, prefix)
		}
		return source{scheme: sc, bucket: bucket, key: key}, nil
	}

	return source{scheme: schemeLocal, path: s}, nil
}

// open resolves src to a store and the blob name inside it.
func (c *commonFlags) open(ctx context.Context, src source, stdin io.Reader) (blobstore.Store, string, error) {
	switch src.scheme {
	case schemeLocal:
		abs, err := filepath.Abs(src.path)
		if err != nil {
			return nil, "", err
		}
		return blobstore.NewLocalStore(filepath.Dir(abs)), filepath.Base(abs), nil

	case schemeStdin:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", err
		}
		store := blobstore.NewMemoryStore()
		store.Put(src.key, data)
		return store, src.key, nil

	case schemeS3:
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("load AWS config: %w", err)
		}
		return s3blob.NewStore(awss3.NewFromConfig(cfg), src.bucket, ""), src.key, nil

	case schemeMinio:
		if c.minioEndpoint == "" {
			return nil, "", fmt.Errorf("%w: minio:// requires -minio-endpoint or MINIO_ENDPOINT", errUsage)
		}
		client, err := minio.New(c.minioEndpoint, &minio.Options{
			Creds:  credentials.NewEnvMinio(),
			Secure: !c.minioInsecure,
		})
		if err != nil {
			return nil, "", err
		}
		return minioblob.NewStore(client, src.bucket, ""), src.key, nil

	default:
		return nil, "", errBadSource
	}
}
