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

const testimonialCollectionName = "testimonials"

type mongoTestimonialRepository struct {
	collection *mongo.Collection
}

func NewMongoTestimonialRepository(db *mongo.Database) repository.TestimonialRepository {
	return &mongoTestimonialRepository{
		collection: db.Collection(testimonialCollectionName),
	}
}

func (r *mongoTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) (primitive.ObjectID, error) {
	t.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return insert(ctx, r.collection, t)
}

func (r *mongoTestimonialRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Testimonial, error) {
	return findOne[domain.Testimonial](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoTestimonialRepository) List(ctx context.Context, filter domain.TestimonialFilter, page domain.Page) ([]domain.Testimonial, error) {
	return findMany[domain.Testimonial](ctx, r.collection, testimonialFilter(filter), pageOptions(page))
}

func (r *mongoTestimonialRepository) Count(ctx context.Context, filter domain.TestimonialFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, testimonialFilter(filter))
}

func (r *mongoTestimonialRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.TestimonialPatch) (*domain.Testimonial, error) {
	set := bson.M{}
	setIf(set, "approved", patch.Approved)
	setIf(set, "featured", patch.Featured)
	return updateByID[domain.Testimonial](ctx, r.collection, id, set)
}

func (r *mongoTestimonialRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

func (r *mongoTestimonialRepository) AverageRating(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "avg": bson.M{"$avg": "$rating"}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Avg, nil
}

func testimonialFilter(f domain.TestimonialFilter) bson.M {
	filter := bson.M{}
	if f.Approved != nil {
		filter["approved"] = *f.Approved
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	if f.Program != "" {
		filter["program"] = f.Program
	}
	return filter
}

func EnsureTestimonialIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "approved", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
}
