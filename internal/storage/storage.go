package storage

import (
	"context"
	"log/slog"
	"time"

	"arena45/backend/internal/config"

	"github.com/cockroachdb/errors"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ErrDisabled is returned by every operation when no bucket is configured.
var ErrDisabled = errors.New("object storage is not configured")

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// ObjectURL is the public address of an object once uploaded.
	ObjectURL(objectKey string) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// New returns S3 storage, or a disabled stand-in when no bucket is set.
func New(cfg config.S3Config, logger *slog.Logger) (FileStorage, error) {
	if cfg.BucketName == "" {
		logger.Warn("S3 bucket not configured, image uploads are disabled")
		return disabled{}, nil
	}
	return NewS3Storage(cfg, logger)
}

type disabled struct{}

func (disabled) GeneratePresignedUploadURL(context.Context, string, string, time.Duration) (string, error) {
	return "", ErrDisabled
}

func (disabled) ObjectURL(string) (string, error) {
	return "", ErrDisabled
}

func (disabled) DeleteObject(context.Context, string) error {
	return ErrDisabled
}
