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

const mediaCollectionName = "media"

// mongoMediaRepository implements repository.MediaRepository
type mongoMediaRepository struct {
	collection *mongo.Collection
}

func NewMongoMediaRepository(db *mongo.Database) repository.MediaRepository {
	return &mongoMediaRepository{
		collection: db.Collection(mediaCollectionName),
	}
}

func (r *mongoMediaRepository) Create(ctx context.Context, upload *domain.MediaUpload) (primitive.ObjectID, error) {
	upload.ID = primitive.NewObjectID()
	upload.CreatedAt = time.Now().UTC()
	return insert(ctx, r.collection, upload)
}

func (r *mongoMediaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MediaUpload, error) {
	return findOne[domain.MediaUpload](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoMediaRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}
