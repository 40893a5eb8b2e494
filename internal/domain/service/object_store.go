package service

import (
	"context"
)

// ObjectStore is a keyed blob store for offer images.
type ObjectStore interface {
	// Put stores data under the given key, overwriting any existing object.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get retrieves the object stored under the key along with its content type.
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)

	// Delete removes the object stored under the key.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket.
	Close() error
}
