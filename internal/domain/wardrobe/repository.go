package wardrobe

import (
	"context"
	"io"
)

// Repository abstracts catalog storage. Implementations return the full
// catalog; filtering is the engine's job.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
}

// ImageStore serves the image assets referenced by catalog records.
type ImageStore interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, data []byte, mimeType string) error
}
