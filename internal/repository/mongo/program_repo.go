package mongo

import (
	"context"
	"time"

	"arena45/backend/internal/domain"
	"arena45/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const programCollectionName = "programs"

type mongoProgramRepository struct {
	collection *mongo.Collection
}

func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		collection: db.Collection(programCollectionName),
	}
}

// Create inserts a program. A taken slug yields repository.ErrDuplicateKey.
func (r *mongoProgramRepository) Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error) {
	program.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now
	if program.Features == nil {
		program.Features = []string{}
	}
	return insert(ctx, r.collection, program)
}

func (r *mongoProgramRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	return findOne[domain.Program](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoProgramRepository) GetBySlug(ctx context.Context, slug string) (*domain.Program, error) {
	return findOne[domain.Program](ctx, r.collection, bson.M{"slug": slug})
}

// List returns programs in display order, newest first within the same order.
func (r *mongoProgramRepository) List(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error) {
	q := bson.M{}
	if filter.Available != nil {
		q["available"] = *filter.Available
	}
	if filter.Featured != nil {
		q["isFeatured"] = *filter.Featured
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	return findMany[domain.Program](ctx, r.collection, q, opts)
}

func (r *mongoProgramRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.ProgramPatch) (*domain.Program, error) {
	set := bson.M{}
	setIf(set, "title", patch.Title)
	setIf(set, "slug", patch.Slug)
	setIf(set, "description", patch.Description)
	setIf(set, "shortDescription", patch.ShortDescription)
	setIf(set, "features", patch.Features)
	setIf(set, "price", patch.Price)
	setIf(set, "duration", patch.Duration)
	setIf(set, "sessionsPerWeek", patch.SessionsPerWeek)
	setIf(set, "image", patch.Image)
	setIf(set, "icon", patch.Icon)
	setIf(set, "isFeatured", patch.IsFeatured)
	setIf(set, "available", patch.Available)
	setIf(set, "order", patch.Order)
	return updateByID[domain.Program](ctx, r.collection, id, set)
}

func (r *mongoProgramRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

// setIf copies *v into set under key when v is non-nil.
func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}

func EnsureProgramIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "available", Value: 1}}},
		{Keys: bson.D{{Key: "isFeatured", Value: 1}}},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	})
}
