package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"parcel-server/internal/domain"
)

// UserRepo represents user repository.
type UserRepo struct{ users *mongo.Collection }

// NewUserRepo creates a new UserRepo.
func NewUserRepo(c *Collections) *UserRepo { return &UserRepo{users: c.Users} }

// FindByEmail returns the user with the exact email, or nil when absent.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email %q: %w", email, err)
	}
	return u, nil
}

// Insert stores the full user document and returns the generated id.
func (r *UserRepo) Insert(ctx context.Context, u domain.User) (primitive.ObjectID, error) {
	res, err := r.users.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}
