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

const userCollectionName = "users"

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
// It expects a connected *mongo.Database instance.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user. The password must already be hashed.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Email == "" || user.PasswordHash == "" || user.Role == "" {
		return primitive.NilObjectID, errors.New("user email, password hash, and role are required")
	}

	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	return insert(ctx, r.collection, user)
}

// GetByEmail retrieves a user by their email address.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.collection, bson.M{"email": email})
}

// GetByID retrieves a user by their MongoDB ObjectID.
func (r *mongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return findOne[domain.User](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoUserRepository) List(ctx context.Context, filter domain.UserFilter, page domain.Page) ([]domain.User, error) {
	opts := pageOptions(page).SetProjection(bson.M{"passwordHash": 0})
	return findMany[domain.User](ctx, r.collection, userFilter(filter), opts)
}

func (r *mongoUserRepository) Count(ctx context.Context, filter domain.UserFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, userFilter(filter))
}

// Update changes profile fields only; passwordHash is never part of the $set.
func (r *mongoUserRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.UserPatch) (*domain.User, error) {
	set := bson.M{}
	setIf(set, "name", patch.Name)
	setIf(set, "phone", patch.Phone)
	setIf(set, "membershipType", patch.MembershipType)
	setIf(set, "status", patch.Status)
	return updateByID[domain.User](ctx, r.collection, id, set)
}

func (r *mongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

func userFilter(f domain.UserFilter) bson.M {
	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

// EnsureUserIndexes creates necessary indexes for the users collection.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
}
