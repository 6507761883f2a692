package storage

import (
	"context"
)

// BlobStore stores product images. Put returns the public URL of the
// stored object; Delete takes the object path (the URL path component).
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}
