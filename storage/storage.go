package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Retrieve when no blob exists under the name.
var ErrNotFound = errors.New("storage: blob not found")

// BlobStore stores opaque byte streams and serves them back verbatim. The
// returned URL is the path clients fetch the blob from (/uploads/<name>).
type BlobStore interface {
	Store(ctx context.Context, r io.Reader, size int64, suggestedName, contentType string) (url string, err error)
	Retrieve(ctx context.Context, name string) (io.ReadCloser, error)
}
