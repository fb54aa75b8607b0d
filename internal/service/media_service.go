package service

import (
	"context"
	"mime"
	"time"

	"arena45/backend/internal/clock"
	"arena45/backend/internal/domain"
	"arena45/backend/internal/repository"
	"arena45/backend/internal/storage"
	"arena45/backend/internal/validation"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type ImageUploadInput struct {
	Folder      string `json:"folder" validate:"required,oneof=programs testimonials"`
	ContentType string `json:"contentType" validate:"required,oneof=image/jpeg image/png image/webp"`
}

// ImageUpload tells the client where to PUT the file and which URL to
// store in the program or testimonial image field afterwards.
type ImageUpload struct {
	ID        string    `json:"_id"`
	UploadURL string    `json:"uploadUrl"`
	ObjectKey string    `json:"objectKey"`
	ImageURL  string    `json:"imageUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type MediaService interface {
	RequestImageUpload(ctx context.Context, in ImageUploadInput) (*ImageUpload, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mediaService struct {
	repo      repository.MediaRepository
	storage   storage.FileStorage
	validator *validation.Validator
	clock     clock.Clock
	expiry    time.Duration
}

func NewMediaService(repo repository.MediaRepository, fs storage.FileStorage, v *validation.Validator, clk clock.Clock, expiry time.Duration) MediaService {
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	return &mediaService{repo: repo, storage: fs, validator: v, clock: clk, expiry: expiry}
}

func (s *mediaService) RequestImageUpload(ctx context.Context, in ImageUploadInput) (*ImageUpload, error) {
	if mt, _, err := mime.ParseMediaType(in.ContentType); err == nil {
		in.ContentType = mt
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	objectKey := in.Folder + "/" + uuid.NewString() + imageExtensions[in.ContentType]
	uploadURL, err := s.storage.GeneratePresignedUploadURL(ctx, objectKey, in.ContentType, s.expiry)
	if err != nil {
		return nil, s.storageError(err, "presign image upload")
	}
	publicURL, err := s.storage.ObjectURL(objectKey)
	if err != nil {
		return nil, s.storageError(err, "resolve image url")
	}

	record := &domain.MediaUpload{
		Folder:      domain.MediaFolder(in.Folder),
		ObjectKey:   objectKey,
		ContentType: in.ContentType,
		PublicURL:   publicURL,
	}
	id, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, unexpected(err, "record image upload")
	}

	return &ImageUpload{
		ID:        id.Hex(),
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		ImageURL:  publicURL,
		ExpiresAt: s.clock.Now().Add(s.expiry),
	}, nil
}

// Delete removes the stored object and its record.
func (s *mediaService) Delete(ctx context.Context, id primitive.ObjectID) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMediaNotFound
		}
		return unexpected(err, "get media upload")
	}
	if err := s.storage.DeleteObject(ctx, record.ObjectKey); err != nil {
		return s.storageError(err, "delete image")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMediaNotFound
		}
		return unexpected(err, "delete media upload")
	}
	return nil
}

func (s *mediaService) storageError(err error, op string) error {
	if errors.Is(err, storage.ErrDisabled) {
		return ErrStorageDisabled
	}
	return unexpected(err, op)
}
