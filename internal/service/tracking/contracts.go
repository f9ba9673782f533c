package tracking

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/domain"
)

// trackingRepository defines storage operations required by the business layer.
type trackingRepository interface {
	Insert(ctx context.Context, l *domain.TrackingLog) (primitive.ObjectID, error)
}
