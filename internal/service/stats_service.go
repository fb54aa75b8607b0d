package service

import (
	"context"
	"time"

	"arena45/backend/internal/clock"
	"arena45/backend/internal/domain"
	"arena45/backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

const recentBookingsWindow = 7 * 24 * time.Hour

type StatsService interface {
	Overview(ctx context.Context) (*domain.StatsOverview, error)
	Bookings(ctx context.Context, period string) (*domain.BookingStats, error)
}

type statsService struct {
	bookings     repository.BookingRepository
	contacts     repository.ContactRepository
	testimonials repository.TestimonialRepository
	users        repository.UserRepository
	clock        clock.Clock
}

func NewStatsService(
	bookings repository.BookingRepository,
	contacts repository.ContactRepository,
	testimonials repository.TestimonialRepository,
	users repository.UserRepository,
	clk clock.Clock,
) StatsService {
	return &statsService{
		bookings:     bookings,
		contacts:     contacts,
		testimonials: testimonials,
		users:        users,
		clock:        clk,
	}
}

// Overview runs its independent reads concurrently; the numbers are not a
// consistent snapshot.
func (s *statsService) Overview(ctx context.Context) (*domain.StatsOverview, error) {
	out := &domain.StatsOverview{}
	o := &out.Overview
	since := s.clock.Now().Add(-recentBookingsWindow)

	g, ctx := errgroup.WithContext(ctx)
	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			*dst = n
			return err
		})
	}
	count(&o.TotalBookings, func(ctx context.Context) (int64, error) {
		return s.bookings.Count(ctx, domain.BookingFilter{})
	})
	count(&o.PendingBookings, func(ctx context.Context) (int64, error) {
		return s.bookings.Count(ctx, domain.BookingFilter{Status: domain.BookingPending})
	})
	count(&o.ConfirmedBookings, func(ctx context.Context) (int64, error) {
		return s.bookings.Count(ctx, domain.BookingFilter{Status: domain.BookingConfirmed})
	})
	count(&o.RecentBookings, func(ctx context.Context) (int64, error) {
		return s.bookings.CountCreatedSince(ctx, since)
	})
	count(&o.TotalContacts, func(ctx context.Context) (int64, error) {
		return s.contacts.Count(ctx, domain.ContactFilter{})
	})
	count(&o.TotalTestimonials, func(ctx context.Context) (int64, error) {
		return s.testimonials.Count(ctx, domain.TestimonialFilter{})
	})
	count(&o.TotalUsers, func(ctx context.Context) (int64, error) {
		return s.users.Count(ctx, domain.UserFilter{})
	})
	count(&o.ActiveUsers, func(ctx context.Context) (int64, error) {
		return s.users.Count(ctx, domain.UserFilter{Status: domain.UserActive})
	})
	g.Go(func() (err error) {
		o.AverageRating, err = s.testimonials.AverageRating(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.BookingsByService, err = s.bookings.CountBy(ctx, "service", time.Time{})
		return err
	})
	g.Go(func() (err error) {
		out.BookingsByStatus, err = s.bookings.CountBy(ctx, "status", time.Time{})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, unexpected(err, "collect stats overview")
	}
	return out, nil
}

// Bookings reports booking activity over a trailing 7, 30 or 365 day window.
func (s *statsService) Bookings(ctx context.Context, period string) (*domain.BookingStats, error) {
	p := domain.ParseStatsPeriod(period)
	now := s.clock.Now()
	since := now.Add(-p.Window())

	var byDay, byService []domain.GroupCount
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byDay, err = s.bookings.CountByCreatedDay(gctx, since, now.Location())
		return err
	})
	g.Go(func() (err error) {
		byService, err = s.bookings.CountBy(gctx, "service", since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, unexpected(err, "collect booking stats")
	}

	perDay := make(map[string]int64, len(byDay))
	for _, d := range byDay {
		perDay[d.Key] = d.Count
	}
	return &domain.BookingStats{
		Period:         p,
		Since:          since,
		BookingsByDate: perDay,
		ServiceStats:   byService,
	}, nil
}
