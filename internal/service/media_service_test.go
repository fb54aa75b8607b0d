package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"arena45/backend/internal/clock"
	"arena45/backend/internal/domain"
	"arena45/backend/internal/repository"
	"arena45/backend/internal/storage"
	"arena45/backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMediaService_RequestImageUpload(t *testing.T) {
	repo := new(mockMediaRepo)
	fs := new(mockStorage)
	issuedAt := time.Date(2030, 3, 14, 15, 0, 0, 0, time.FixedZone("CET", 3600))
	svc := NewMediaService(repo, fs, validation.New(), clock.NewMockClock(issuedAt), 10*time.Minute)
	id := primitive.NewObjectID()

	isProgramKey := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "programs/") && strings.HasSuffix(key, ".webp")
	})
	fs.On("GeneratePresignedUploadURL", mock.Anything, isProgramKey, "image/webp", 10*time.Minute).
		Return("https://bucket.example/upload?sig=1", nil).Once()
	fs.On("ObjectURL", isProgramKey).Return("https://cdn.example/programs/x.webp", nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.MediaUpload) bool {
		return u.Folder == domain.MediaPrograms && u.ContentType == "image/webp"
	})).Return(id, nil).Once()

	got, err := svc.RequestImageUpload(context.Background(), ImageUploadInput{
		Folder:      "programs",
		ContentType: "image/webp; charset=binary",
	})
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), got.ID)
	assert.Equal(t, "https://bucket.example/upload?sig=1", got.UploadURL)
	assert.Equal(t, "https://cdn.example/programs/x.webp", got.ImageURL)
	assert.True(t, strings.HasPrefix(got.ObjectKey, "programs/"))
	assert.Equal(t, issuedAt.Add(10*time.Minute), got.ExpiresAt)
	assert.Equal(t, issuedAt.Location(), got.ExpiresAt.Location())
	repo.AssertExpectations(t)
	fs.AssertExpectations(t)
}

func TestMediaService_RequestImageUpload_Rejected(t *testing.T) {
	svc := NewMediaService(new(mockMediaRepo), new(mockStorage), validation.New(), clock.NewMockClock(time.Now()), 0)

	_, err := svc.RequestImageUpload(context.Background(), ImageUploadInput{Folder: "avatars", ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RequestImageUpload(context.Background(), ImageUploadInput{Folder: "programs", ContentType: "image/gif"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMediaService_StorageDisabled(t *testing.T) {
	fs := new(mockStorage)
	svc := NewMediaService(new(mockMediaRepo), fs, validation.New(), clock.NewMockClock(time.Now()), 0)
	fs.On("GeneratePresignedUploadURL", mock.Anything, mock.Anything, "image/png", storage.DefaultPresignedURLExpiry).
		Return("", storage.ErrDisabled).Once()

	_, err := svc.RequestImageUpload(context.Background(), ImageUploadInput{Folder: "testimonials", ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestMediaService_Delete(t *testing.T) {
	repo := new(mockMediaRepo)
	fs := new(mockStorage)
	svc := NewMediaService(repo, fs, validation.New(), clock.NewMockClock(time.Now()), 0)
	id := primitive.NewObjectID()

	repo.On("GetByID", mock.Anything, id).Return(&domain.MediaUpload{ID: id, ObjectKey: "programs/a.jpg"}, nil).Once()
	fs.On("DeleteObject", mock.Anything, "programs/a.jpg").Return(nil).Once()
	repo.On("Delete", mock.Anything, id).Return(nil).Once()
	require.NoError(t, svc.Delete(context.Background(), id))

	missing := primitive.NewObjectID()
	repo.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrNotFound).Once()
	assert.ErrorIs(t, svc.Delete(context.Background(), missing), ErrMediaNotFound)

	repo.AssertExpectations(t)
	fs.AssertExpectations(t)
}
