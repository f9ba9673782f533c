package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/domain"
)

// userRepository defines storage operations required by the business layer.
type userRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Insert(ctx context.Context, u domain.User) (primitive.ObjectID, error)
}
