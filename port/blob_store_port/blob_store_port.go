package blob_store_port

//go:generate mockgen -source=blob_store_port.go -destination=../../mocks/mock_blob_store_port.go -package=mocks

import (
	"context"
	"io"
)

// BlobStorePort stores opaque binary objects (article thumbnails) and
// hands back stable references.
type BlobStorePort interface {
	// Store writes the object and returns its reference. The reference
	// is only durable once Store returns nil.
	Store(ctx context.Context, originalName string, r io.Reader) (string, error)

	// Release discards the object behind ref. Releasing an unknown
	// reference is not an error.
	Release(ctx context.Context, ref string) error

	// Open returns the object's content for reading.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}
