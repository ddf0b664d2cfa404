package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading and writing catalog blobs.
// Catalogs are small and read sequentially, so blobs are plain streams.
type Store interface {
	// Open opens a blob for reading. The caller must close the returned
	// reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Put writes a blob, replacing any existing blob of the same name.
	Put(ctx context.Context, name string, data []byte) error
}
