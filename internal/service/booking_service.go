package service

import (
	"context"
	"strings"

	"arena45/backend/internal/clock"
	"arena45/backend/internal/domain"
	"arena45/backend/internal/notify"
	"arena45/backend/internal/repository"
	"arena45/backend/internal/validation"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBookingInput is a booking request as submitted by a visitor.
type CreateBookingInput struct {
	Service string `json:"service" validate:"required,oneof=ems crossfit pilates consultation"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Notes   string `json:"notes"`
}

func (in *CreateBookingInput) normalize() {
	in.Service = strings.TrimSpace(in.Service)
	in.Time = strings.TrimSpace(in.Time)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Notes = strings.TrimSpace(in.Notes)
}

// BookingQuery selects a page of bookings. Zero values mean "any" or the default.
type BookingQuery struct {
	Page    int64  `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit   int64  `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Status  string `form:"status" json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Service string `form:"service" json:"service" validate:"omitempty,oneof=ems crossfit pilates consultation"`
	Date    string `form:"date" json:"date"`
}

type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context, q BookingQuery) ([]domain.Booking, domain.Pagination, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*domain.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type bookingService struct {
	repo      repository.BookingRepository
	notifier  notify.Notifier
	validator *validation.Validator
	clock     clock.Clock
}

func NewBookingService(repo repository.BookingRepository, notifier notify.Notifier, v *validation.Validator, clk clock.Clock) BookingService {
	return &bookingService{
		repo:      repo,
		notifier:  notifier,
		validator: v,
		clock:     clk,
	}
}

// Create validates and stores a booking as pending, then notifies once.
// Only the calendar day is checked against today; an earlier time on the
// current day is accepted.
func (s *bookingService) Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	in.normalize()
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	day, ok := parseCalendarDate(in.Date, now.Location())
	if !ok {
		return nil, ErrInvalidDate
	}
	if day.Before(startOfDay(now)) {
		return nil, ErrPastDate
	}

	booking := &domain.Booking{
		Service: domain.ServiceType(in.Service),
		Date:    day,
		Time:    in.Time,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Notes:   in.Notes,
		Status:  domain.BookingPending,
	}
	id, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, unexpected(err, "create booking")
	}
	booking.ID = id

	// The booking is committed; the notification must outlive a disconnecting client.
	s.notifier.Notify(context.WithoutCancel(ctx), notify.BookingCreatedEvent(booking))
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, q BookingQuery) ([]domain.Booking, domain.Pagination, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, domain.Pagination{}, err
	}
	filter := domain.BookingFilter{
		Status:  domain.BookingStatus(q.Status),
		Service: domain.ServiceType(q.Service),
	}
	if q.Date != "" {
		day, ok := parseCalendarDate(q.Date, s.clock.Now().Location())
		if !ok {
			return nil, domain.Pagination{}, ErrInvalidDate
		}
		filter.DayStart, filter.DayEnd = day, endOfDay(day)
	}

	page := domain.NewPage(q.Page, q.Limit)
	items, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, domain.Pagination{}, unexpected(err, "list bookings")
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, unexpected(err, "count bookings")
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *bookingService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, unexpected(err, "get booking")
	}
	return booking, nil
}

// UpdateStatus allows any transition between the four statuses.
func (s *bookingService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*domain.Booking, error) {
	st := domain.BookingStatus(strings.TrimSpace(status))
	if !st.IsValid() {
		return nil, ErrInvalidStatus
	}
	booking, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, unexpected(err, "update booking status")
	}
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookingNotFound
		}
		return unexpected(err, "delete booking")
	}
	return nil
}
