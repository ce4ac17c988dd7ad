package ports

import (
	"context"
	"io"
)

// FileService stores and retrieves uploads, enforcing the settings limits.
type FileService interface {
	// Save rejects files whose extension is not allowed or whose size
	// exceeds the configured maximum.
	Save(ctx context.Context, name string, size int64, r io.Reader) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
