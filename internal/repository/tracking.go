package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"parcel-server/internal/domain"
)

// TrackingRepo represents tracking log repository.
type TrackingRepo struct{ tracking *mongo.Collection }

// NewTrackingRepo creates a new TrackingRepo.
func NewTrackingRepo(c *Collections) *TrackingRepo { return &TrackingRepo{tracking: c.Tracking} }

// Insert appends a tracking log entry and returns the generated id.
func (r *TrackingRepo) Insert(ctx context.Context, l *domain.TrackingLog) (primitive.ObjectID, error) {
	res, err := r.tracking.InsertOne(ctx, l)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert tracking log: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert tracking log: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}
