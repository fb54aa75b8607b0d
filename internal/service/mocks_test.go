package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"arena45/backend/internal/domain"
	"arena45/backend/internal/notify"
	"arena45/backend/internal/validation"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ret returns result i of a mocked call as T; a nil result yields the zero value.
func ret[T any](args mock.Arguments, i int) T {
	var zero T
	if v := args.Get(i); v != nil {
		return v.(T)
	}
	return zero
}

// invalidFields returns the field names reported by a validation failure.
func invalidFields(t *testing.T, err error) []string {
	t.Helper()
	require.ErrorIs(t, err, ErrValidation)
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field)
	}
	return fields
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (primitive.ObjectID, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	return ret[*domain.Booking](args, 0), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, f domain.BookingFilter, p domain.Page) ([]domain.Booking, error) {
	args := m.Called(ctx, f, p)
	return ret[[]domain.Booking](args, 0), args.Error(1)
}

func (m *mockBookingRepo) Count(ctx context.Context, f domain.BookingFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, st domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, st)
	return ret[*domain.Booking](args, 0), args.Error(1)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookingRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) CountBy(ctx context.Context, field string, since time.Time) ([]domain.GroupCount, error) {
	args := m.Called(ctx, field, since)
	return ret[[]domain.GroupCount](args, 0), args.Error(1)
}

func (m *mockBookingRepo) CountByCreatedDay(ctx context.Context, since time.Time, loc *time.Location) ([]domain.GroupCount, error) {
	args := m.Called(ctx, since, loc)
	return ret[[]domain.GroupCount](args, 0), args.Error(1)
}

type mockContactRepo struct{ mock.Mock }

func (m *mockContactRepo) Create(ctx context.Context, c *domain.Contact) (primitive.ObjectID, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockContactRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	return ret[*domain.Contact](args, 0), args.Error(1)
}

func (m *mockContactRepo) List(ctx context.Context, f domain.ContactFilter, p domain.Page) ([]domain.Contact, error) {
	args := m.Called(ctx, f, p)
	return ret[[]domain.Contact](args, 0), args.Error(1)
}

func (m *mockContactRepo) Count(ctx context.Context, f domain.ContactFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, st domain.ContactStatus) (*domain.Contact, error) {
	args := m.Called(ctx, id, st)
	return ret[*domain.Contact](args, 0), args.Error(1)
}

type mockProgramRepo struct{ mock.Mock }

func (m *mockProgramRepo) Create(ctx context.Context, p *domain.Program) (primitive.ObjectID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockProgramRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	args := m.Called(ctx, id)
	return ret[*domain.Program](args, 0), args.Error(1)
}

func (m *mockProgramRepo) GetBySlug(ctx context.Context, slug string) (*domain.Program, error) {
	args := m.Called(ctx, slug)
	return ret[*domain.Program](args, 0), args.Error(1)
}

func (m *mockProgramRepo) List(ctx context.Context, f domain.ProgramFilter) ([]domain.Program, error) {
	args := m.Called(ctx, f)
	return ret[[]domain.Program](args, 0), args.Error(1)
}

func (m *mockProgramRepo) Update(ctx context.Context, id primitive.ObjectID, p domain.ProgramPatch) (*domain.Program, error) {
	args := m.Called(ctx, id, p)
	return ret[*domain.Program](args, 0), args.Error(1)
}

func (m *mockProgramRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockTestimonialRepo struct{ mock.Mock }

func (m *mockTestimonialRepo) Create(ctx context.Context, t *domain.Testimonial) (primitive.ObjectID, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockTestimonialRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Testimonial, error) {
	args := m.Called(ctx, id)
	return ret[*domain.Testimonial](args, 0), args.Error(1)
}

func (m *mockTestimonialRepo) List(ctx context.Context, f domain.TestimonialFilter, p domain.Page) ([]domain.Testimonial, error) {
	args := m.Called(ctx, f, p)
	return ret[[]domain.Testimonial](args, 0), args.Error(1)
}

func (m *mockTestimonialRepo) Count(ctx context.Context, f domain.TestimonialFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTestimonialRepo) Update(ctx context.Context, id primitive.ObjectID, p domain.TestimonialPatch) (*domain.Testimonial, error) {
	args := m.Called(ctx, id, p)
	return ret[*domain.Testimonial](args, 0), args.Error(1)
}

func (m *mockTestimonialRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTestimonialRepo) AverageRating(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return ret[*domain.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	return ret[*domain.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, f domain.UserFilter, p domain.Page) ([]domain.User, error) {
	args := m.Called(ctx, f, p)
	return ret[[]domain.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context, f domain.UserFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id primitive.ObjectID, p domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, p)
	return ret[*domain.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockMediaRepo struct{ mock.Mock }

func (m *mockMediaRepo) Create(ctx context.Context, u *domain.MediaUpload) (primitive.ObjectID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockMediaRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MediaUpload, error) {
	args := m.Called(ctx, id)
	return ret[*domain.MediaUpload](args, 0), args.Error(1)
}

func (m *mockMediaRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) GeneratePresignedUploadURL(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expires)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) ObjectURL(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// recordingNotifier keeps every event it receives.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Notify(_ context.Context, e notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) Events() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Event(nil), n.events...)
}
