package mongo

import (
	"context"
	"time"

	"arena45/backend/internal/domain"
	"arena45/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const contactCollectionName = "contacts"

type mongoContactRepository struct {
	collection *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) repository.ContactRepository {
	return &mongoContactRepository{
		collection: db.Collection(contactCollectionName),
	}
}

func (r *mongoContactRepository) Create(ctx context.Context, contact *domain.Contact) (primitive.ObjectID, error) {
	contact.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	return insert(ctx, r.collection, contact)
}

func (r *mongoContactRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Contact, error) {
	return findOne[domain.Contact](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoContactRepository) List(ctx context.Context, filter domain.ContactFilter, page domain.Page) ([]domain.Contact, error) {
	return findMany[domain.Contact](ctx, r.collection, contactFilter(filter), pageOptions(page))
}

func (r *mongoContactRepository) Count(ctx context.Context, filter domain.ContactFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, contactFilter(filter))
}

func (r *mongoContactRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ContactStatus) (*domain.Contact, error) {
	return updateByID[domain.Contact](ctx, r.collection, id, bson.M{"status": status})
}

func contactFilter(f domain.ContactFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func EnsureContactIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
}
