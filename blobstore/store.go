package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrReadOnly is returned by Put on stores that cannot be written to.
var ErrReadOnly = errors.New("blobstore: store is read-only")

// Store is an abstraction for reading and writing whole blobs.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
}

// Blob is a read-once handle to a blob.
type Blob interface {
	io.ReadCloser
	// Size returns the size of the blob in bytes, or -1 if unknown.
	Size() int64
}

// ReadAll opens name and returns its full contents.
func ReadAll(ctx context.Context, s Store, name string) ([]byte, error) {
	b, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()
	return io.ReadAll(b)
}
