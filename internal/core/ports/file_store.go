package ports

import (
	"context"
	"io"
)

// FileStore is the blob-store boundary (GridFS in production).
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	// Open streams the newest revision stored under name.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Exists(ctx context.Context, name string) (bool, error)
	// DeleteByName removes every revision stored under name.
	DeleteByName(ctx context.Context, name string) error
	DeleteByID(ctx context.Context, id string) error
}
