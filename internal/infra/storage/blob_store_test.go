package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shareplate/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) *blobStore {
	t.Helper()

	cfg := &config.Config{
		Storage: &config.StorageConfig{BucketURL: "mem://"},
	}

	store, err := NewBlobStore(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store.(*blobStore)
}

func TestBlobStore_PutGetDelete(t *testing.T) {
	store := newMemStore(t)
	ctx := context.Background()

	payload := []byte{0x89, 0x50, 0x4E, 0x47}
	require.NoError(t, store.Put(ctx, "offers/test.png", payload, "image/png"))

	data, contentType, err := store.Get(ctx, "offers/test.png")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, "offers/test.png"))

	_, _, err = store.Get(ctx, "offers/test.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestBlobStore_DeleteMissing(t *testing.T) {
	store := newMemStore(t)

	err := store.Delete(context.Background(), "offers/missing.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestNewBlobStore_MissingURL(t *testing.T) {
	_, err := NewBlobStore(context.Background(), &config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
