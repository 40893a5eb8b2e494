// Package storage implements the ObjectStore domain service on top of
// gocloud.dev blob buckets, so offer images can live on local disk, in
// memory for tests, or in GCS without code changes.
package storage

import (
	"context"
	"io"
	"log/slog"

	"shareplate/config"
	"shareplate/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by the bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// ErrObjectNotFound is returned when the requested key does not exist.
var ErrObjectNotFound = errors.New("object not found")

type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobStore opens the configured bucket and returns it as an ObjectStore.
func NewBlobStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ObjectStore, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.Storage.BucketURL)
	}

	logger.Info("Blob store initialized",
		slog.String("bucket_url", cfg.Storage.BucketURL),
	)

	return &blobStore{
		bucket: bucket,
		logger: logger,
	}, nil
}

// Put stores the object under key, overwriting any existing object.
func (s *blobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return errors.Wrapf(err, "write %s", key)
	}

	return errors.Wrapf(writer.Close(), "close writer for %s", key)
}

// Get returns the object stored under key along with its content type.
func (s *blobStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "open reader for %s", key)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s", key)
	}

	return data, reader.ContentType(), nil
}

// Delete removes the object stored under key.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return ErrObjectNotFound
		}

		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

// Close releases the underlying bucket.
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
