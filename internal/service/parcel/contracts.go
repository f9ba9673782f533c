package parcel

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/domain"
)

// parcelRepository defines storage operations required by the business layer.
type parcelRepository interface {
	List(ctx context.Context, email string) ([]domain.Parcel, error)
	Get(ctx context.Context, id primitive.ObjectID) (domain.Parcel, error)
	Insert(ctx context.Context, p domain.Parcel) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
