package mongo

import (
	"context"
	"time"

	"arena45/backend/internal/domain"
	"arena45/backend/internal/repository"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bookingCollectionName = "bookings"

// namespaceExistsCode is returned by create when the collection is already there.
const namespaceExistsCode = 48

// mongoBookingRepository implements repository.BookingRepository
type mongoBookingRepository struct {
	collection *mongo.Collection
}

func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &mongoBookingRepository{
		collection: db.Collection(bookingCollectionName),
	}
}

// Create inserts a booking and stamps its id and timestamps.
func (r *mongoBookingRepository) Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	booking.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	return insert(ctx, r.collection, booking)
}

func (r *mongoBookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	return findOne[domain.Booking](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoBookingRepository) List(ctx context.Context, filter domain.BookingFilter, page domain.Page) ([]domain.Booking, error) {
	return findMany[domain.Booking](ctx, r.collection, bookingFilter(filter), pageOptions(page))
}

func (r *mongoBookingRepository) Count(ctx context.Context, filter domain.BookingFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, bookingFilter(filter))
}

func (r *mongoBookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (*domain.Booking, error) {
	return updateByID[domain.Booking](ctx, r.collection, id, bson.M{"status": status})
}

func (r *mongoBookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

func (r *mongoBookingRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since.UTC()}})
}

func (r *mongoBookingRepository) CountBy(ctx context.Context, field string, since time.Time) ([]domain.GroupCount, error) {
	if field != "service" && field != "status" {
		return nil, errors.Newf("cannot group bookings by %q", field)
	}
	match := bson.M{}
	if !since.IsZero() {
		match["createdAt"] = bson.M{"$gte": since.UTC()}
	}
	return groupCount(ctx, r.collection, match, "$"+field,
		bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}})
}

func (r *mongoBookingRepository) CountByCreatedDay(ctx context.Context, since time.Time, loc *time.Location) ([]domain.GroupCount, error) {
	day := bson.D{{Key: "$dateToString", Value: bson.D{
		{Key: "format", Value: "%Y-%m-%d"},
		{Key: "date", Value: "$createdAt"},
		{Key: "timezone", Value: mongoTimezone(loc, since)},
	}}}
	return groupCount(ctx, r.collection, bson.M{"createdAt": bson.M{"$gte": since.UTC()}}, day,
		bson.D{{Key: "_id", Value: 1}})
}

func bookingFilter(f domain.BookingFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Service != "" {
		filter["service"] = f.Service
	}
	if !f.DayStart.IsZero() {
		filter["date"] = bson.M{"$gte": f.DayStart, "$lte": f.DayEnd}
	}
	return filter
}

// EnsureBookingIndexes creates necessary indexes for the bookings collection.
func EnsureBookingIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "service", Value: 1}}},
	})
}

var bookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"service", "date", "time", "name", "email", "phone", "status"},
		"properties": bson.M{
			"service": bson.M{
				"enum": []string{
					string(domain.ServiceEMS), string(domain.ServiceCrossFit),
					string(domain.ServicePilates), string(domain.ServiceConsultation),
				},
			},
			"status": bson.M{
				"enum": []string{
					string(domain.BookingPending), string(domain.BookingConfirmed),
					string(domain.BookingCancelled), string(domain.BookingCompleted),
				},
			},
			"date":  bson.M{"bsonType": "date"},
			"time":  bson.M{"bsonType": "string"},
			"name":  bson.M{"bsonType": "string", "minLength": 2},
			"email": bson.M{"bsonType": "string"},
			"phone": bson.M{"bsonType": "string", "minLength": 10},
		},
	},
}

// EnsureBookingValidator installs the bookings $jsonSchema, creating the
// collection when needed.
func EnsureBookingValidator(ctx context.Context, db *mongo.Database) error {
	err := db.CreateCollection(ctx, bookingCollectionName, options.CreateCollection().SetValidator(bookingValidator))
	if err == nil {
		return nil
	}
	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != namespaceExistsCode {
		return errors.Wrap(err, "create bookings collection")
	}
	cmd := bson.D{
		{Key: "collMod", Value: bookingCollectionName},
		{Key: "validator", Value: bookingValidator},
	}
	return errors.Wrap(db.RunCommand(ctx, cmd).Err(), "update bookings validator")
}
