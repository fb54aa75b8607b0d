package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"arena45/backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
)

// s3Storage implements the FileStorage interface using an S3-compatible backend.
type s3Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
	publicBase    string
	logger        *slog.Logger
}

// NewS3Storage creates a new S3 storage service instance.
func NewS3Storage(cfg config.S3Config, logger *slog.Logger) (FileStorage, error) {
	opts := []func(*awsCfg.LoadOptions) error{awsCfg.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load AWS SDK config")
	}

	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// Path-style addressing is required by most S3-compatible services (like MinIO)
			o.UsePathStyle = true
		}
	})

	publicBase, err := publicBaseURL(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("S3 storage initialized", slog.String("endpoint", cfg.Endpoint), slog.String("bucket", cfg.BucketName))

	return &s3Storage{
		client:        s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    cfg.BucketName,
		publicBase:    publicBase,
		logger:        logger,
	}, nil
}

// publicBaseURL resolves where uploaded objects can be read from.
func publicBaseURL(cfg config.S3Config) (string, error) {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/"), nil
	case cfg.Endpoint != "":
		u, err := url.Parse(cfg.Endpoint)
		if err != nil {
			return "", errors.Wrap(err, "parse S3 endpoint")
		}
		return strings.TrimRight(u.String(), "/") + "/" + cfg.BucketName, nil
	default:
		return "https://" + cfg.BucketName + ".s3." + cfg.Region + ".amazonaws.com", nil
	}
}

// GeneratePresignedUploadURL creates a temporary URL for uploading (PUT).
func (s *s3Storage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}

	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType), // Client MUST send the same header on upload
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", errors.Wrapf(err, "presign PUT for %s", objectKey)
	}
	return req.URL, nil
}

func (s *s3Storage) ObjectURL(objectKey string) (string, error) {
	return s.publicBase + "/" + strings.TrimLeft(objectKey, "/"), nil
}

// DeleteObject removes an object from the S3 bucket.
func (s *s3Storage) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return errors.Wrapf(err, "delete object %s", objectKey)
	}
	s.logger.Info("deleted object", slog.String("key", objectKey), slog.String("bucket", s.bucketName))
	return nil
}
