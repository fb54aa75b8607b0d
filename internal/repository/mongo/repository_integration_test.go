//go:build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"arena45/backend/internal/domain"
	"arena45/backend/internal/repository"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RepositorySuite struct {
	suite.Suite
	container *tcmongo.MongoDBContainer
	client    *mongo.Client
	db        *mongo.Database
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	ctx := context.Background()
	container, err := tcmongo.Run(ctx, "mongo:7")
	s.Require().NoError(err)
	s.container = container

	uri, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	s.client, err = ConnectDB(ctx, uri)
	s.Require().NoError(err)
	s.db = s.client.Database("arena45_test")
	s.Require().NoError(EnsureIndexes(ctx, s.db))
}

func (s *RepositorySuite) TearDownSuite() {
	ctx := context.Background()
	if s.client != nil {
		s.NoError(DisconnectDB(ctx, s.client))
	}
	s.NoError(testcontainers.TerminateContainer(s.container))
}

func (s *RepositorySuite) SetupTest() {
	ctx := context.Background()
	for _, name := range []string{bookingCollectionName, contactCollectionName, programCollectionName, testimonialCollectionName, userCollectionName, mediaCollectionName} {
		_, err := s.db.Collection(name).DeleteMany(ctx, bson.M{})
		s.Require().NoError(err)
	}
}

func newBooking(service domain.ServiceType, day time.Time) *domain.Booking {
	return &domain.Booking{
		Service: service,
		Date:    day,
		Time:    "10:00",
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "0123456789",
		Status:  domain.BookingPending,
	}
}

func (s *RepositorySuite) TestBooking_Lifecycle() {
	ctx := context.Background()
	repo := NewMongoBookingRepository(s.db)
	day := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)

	id, err := repo.Create(ctx, newBooking(domain.ServiceEMS, day))
	s.Require().NoError(err)

	got, err := repo.GetByID(ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.BookingPending, got.Status)

	updated, err := repo.UpdateStatus(ctx, id, domain.BookingConfirmed)
	s.Require().NoError(err)
	s.Equal(domain.BookingConfirmed, updated.Status)
	s.Equal(got.Name, updated.Name)
	s.True(updated.UpdatedAt.After(got.UpdatedAt) || updated.UpdatedAt.Equal(got.UpdatedAt))

	s.Require().NoError(repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	s.ErrorIs(err, repository.ErrNotFound)
	s.ErrorIs(repo.Delete(ctx, id), repository.ErrNotFound)
	_, err = repo.UpdateStatus(ctx, primitive.NewObjectID(), domain.BookingCancelled)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositorySuite) TestBooking_ListFiltersAndPaging() {
	ctx := context.Background()
	repo := NewMongoBookingRepository(s.db)
	day := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, newBooking(domain.ServicePilates, day))
		s.Require().NoError(err)
	}
	_, err := repo.Create(ctx, newBooking(domain.ServiceEMS, day.AddDate(0, 0, 1)))
	s.Require().NoError(err)

	filter := domain.BookingFilter{
		DayStart: day,
		DayEnd:   day.Add(24*time.Hour - time.Millisecond),
	}
	total, err := repo.Count(ctx, filter)
	s.Require().NoError(err)
	s.EqualValues(5, total)

	seen := map[primitive.ObjectID]bool{}
	for p := int64(1); p <= 3; p++ {
		items, err := repo.List(ctx, filter, domain.NewPage(p, 2))
		s.Require().NoError(err)
		for _, b := range items {
			s.False(seen[b.ID], "duplicate id across pages")
			seen[b.ID] = true
		}
	}
	s.Len(seen, 5)

	byService, err := repo.CountBy(ctx, "service", time.Time{})
	s.Require().NoError(err)
	s.Equal([]domain.GroupCount{{Key: "pilates", Count: 5}, {Key: "ems", Count: 1}}, byService)

	byDay, err := repo.CountByCreatedDay(ctx, time.Now().Add(-time.Hour), time.UTC)
	s.Require().NoError(err)
	s.Require().Len(byDay, 1)
	s.EqualValues(6, byDay[0].Count)
}

func (s *RepositorySuite) TestBooking_ValidatorRejectsUnknownStatus() {
	ctx := context.Background()
	_, err := s.db.Collection(bookingCollectionName).InsertOne(ctx, bson.M{
		"service": "yoga", "date": time.Now(), "time": "10:00", "name": "Jo",
		"email": "jo@example.com", "phone": "0123456789", "status": "pending",
	})
	s.Error(err)
}

func (s *RepositorySuite) TestProgram_DuplicateSlug() {
	ctx := context.Background()
	repo := NewMongoProgramRepository(s.db)
	p := &domain.Program{Title: "EMS", Slug: "ems-training", Description: "Electro muscle", ShortDescription: "Short text!", Duration: "20 min", Icon: "zap", Available: true}
	id, err := repo.Create(ctx, p)
	s.Require().NoError(err)

	_, err = repo.Create(ctx, &domain.Program{Title: "Other", Slug: "ems-training", Duration: "1h", Icon: "x"})
	s.ErrorIs(err, repository.ErrDuplicateKey)

	other, err := repo.Create(ctx, &domain.Program{Title: "Pilates", Slug: "pilates", Duration: "1h", Icon: "x", Order: -1})
	s.Require().NoError(err)
	slug := "ems-training"
	_, err = repo.Update(ctx, other, domain.ProgramPatch{Slug: &slug})
	s.ErrorIs(err, repository.ErrDuplicateKey)

	list, err := repo.List(ctx, domain.ProgramFilter{})
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(other, list[0].ID)
	s.Equal(id, list[1].ID)

	bySlug, err := repo.GetBySlug(ctx, "ems-training")
	s.Require().NoError(err)
	s.Equal("EMS", bySlug.Title)
}

func (s *RepositorySuite) TestUser_UniqueEmailAndProjection() {
	ctx := context.Background()
	repo := NewMongoUserRepository(s.db)
	u := &domain.User{Name: "Jo", Email: "jo@example.com", PasswordHash: "hash", Role: domain.RoleMember, Status: domain.UserActive}
	id, err := repo.Create(ctx, u)
	s.Require().NoError(err)

	_, err = repo.Create(ctx, &domain.User{Name: "Jo2", Email: "jo@example.com", PasswordHash: "h", Role: domain.RoleMember})
	s.ErrorIs(err, repository.ErrDuplicateKey)

	users, err := repo.List(ctx, domain.UserFilter{Status: domain.UserActive}, domain.NewPage(1, 10))
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Empty(users[0].PasswordHash)

	name := "Joanna"
	updated, err := repo.Update(ctx, id, domain.UserPatch{Name: &name})
	s.Require().NoError(err)
	s.Equal("Joanna", updated.Name)
	s.Equal("hash", updated.PasswordHash)
}

func (s *RepositorySuite) TestTestimonial_AverageRating() {
	ctx := context.Background()
	repo := NewMongoTestimonialRepository(s.db)

	avg, err := repo.AverageRating(ctx)
	s.Require().NoError(err)
	s.Zero(avg)

	for _, r := range []float64{5, 4, 3} {
		_, err := repo.Create(ctx, &domain.Testimonial{Name: "Al", Role: "Member", Rating: r, Text: "Great studio!"})
		s.Require().NoError(err)
	}
	avg, err = repo.AverageRating(ctx)
	s.Require().NoError(err)
	s.InDelta(4.0, avg, 0.0001)
}
