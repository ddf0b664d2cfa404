package main

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/urschrei/cocktails/blobstore"
	"github.com/urschrei/cocktails/blobstore/s3"
	miniostore "github.com/urschrei/cocktails/blobstore/minio"
	"github.com/urschrei/cocktails/catalog"
)

// loadCatalog resolves a --data location and reads the catalog behind it.
// Plain paths go straight to the filesystem; s3:// and minio:// URLs are
// routed through the matching blob store.
func loadCatalog(ctx context.Context, location string) (*catalog.Catalog, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		bucket, key, err := splitObjectURL(strings.TrimPrefix(location, "s3://"))
		if err != nil {
			return nil, fmt.Errorf("invalid s3 location %q: %w", location, err)
		}
		store, err := newS3Store(ctx, bucket)
		if err != nil {
			return nil, err
		}
		return catalog.Load(ctx, store, key)
	case strings.HasPrefix(location, "minio://"):
		endpoint, rest, ok := strings.Cut(strings.TrimPrefix(location, "minio://"), "/")
		if !ok {
			return nil, fmt.Errorf("invalid minio location %q: want minio://endpoint/bucket/key", location)
		}
		bucket, key, err := splitObjectURL(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid minio location %q: %w", location, err)
		}
		store, err := newMinioStore(endpoint, bucket)
		if err != nil {
			return nil, err
		}
		return catalog.Load(ctx, store, key)
	default:
		return catalog.ReadFile(location)
	}
}

func splitObjectURL(rest string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("want bucket/key, got %q", rest)
	}
	return bucket, key, nil
}

func newS3Store(ctx context.Context, bucket string) (blobstore.Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewStore(awss3.NewFromConfig(cfg), bucket, ""), nil
}

func newMinioStore(endpoint, bucket string) (blobstore.Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewEnvMinio(),
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}
	return miniostore.NewStore(client, bucket, ""), nil
}
