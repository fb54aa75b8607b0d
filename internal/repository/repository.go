package repository

import (
	"context"
	"time"

	"arena45/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// BookingRepository stores session bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter, page domain.Page) ([]domain.Booking, error)
	Count(ctx context.Context, filter domain.BookingFilter) (int64, error)
	// UpdateStatus changes only status and updatedAt and returns the stored document.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	// CountBy groups bookings on field ("service" or "status"), most frequent first.
	// A non-zero since restricts the count to bookings created after it.
	CountBy(ctx context.Context, field string, since time.Time) ([]domain.GroupCount, error)
	// CountByCreatedDay buckets bookings created after since by local calendar day.
	CountByCreatedDay(ctx context.Context, since time.Time, loc *time.Location) ([]domain.GroupCount, error)
}

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Contact, error)
	List(ctx context.Context, filter domain.ContactFilter, page domain.Page) ([]domain.Contact, error)
	Count(ctx context.Context, filter domain.ContactFilter) (int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ContactStatus) (*domain.Contact, error)
}

// ProgramRepository stores training programs. Create and Update return
// ErrDuplicateKey when the slug is taken.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Program, error)
	List(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ProgramPatch) (*domain.Program, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Testimonial, error)
	List(ctx context.Context, filter domain.TestimonialFilter, page domain.Page) ([]domain.Testimonial, error)
	Count(ctx context.Context, filter domain.TestimonialFilter) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.TestimonialPatch) (*domain.Testimonial, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AverageRating returns 0 when there are no testimonials.
	AverageRating(ctx context.Context) (float64, error)
}

// UserRepository stores accounts. Create returns ErrDuplicateKey for a taken email.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter, page domain.Page) ([]domain.User, error)
	Count(ctx context.Context, filter domain.UserFilter) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MediaRepository keeps track of issued image uploads.
type MediaRepository interface {
	Create(ctx context.Context, upload *domain.MediaUpload) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MediaUpload, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
