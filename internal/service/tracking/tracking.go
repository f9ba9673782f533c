package tracking

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/apperr"
	"parcel-server/internal/domain"
)

// AppendInput carries one tracking event. ParcelID is an optional hex id.
type AppendInput struct {
	TrackingID string
	ParcelID   string
	Status     string
	Message    string
	UpdatedBy  string
}

// Service appends tracking log entries with a server-assigned timestamp.
type Service struct {
	repo             trackingRepository
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a tracking Service.
func NewService(r trackingRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout, now: time.Now}
}

// Append stores a tracking log entry and returns its generated id.
func (s *Service) Append(ctx context.Context, in AppendInput) (primitive.ObjectID, error) {
	l := &domain.TrackingLog{
		TrackingID: in.TrackingID,
		Status:     in.Status,
		Message:    in.Message,
		Time:       s.now().UTC(),
		UpdatedBy:  in.UpdatedBy,
	}
	if in.ParcelID != "" {
		id, err := primitive.ObjectIDFromHex(in.ParcelID)
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("parse parcel id %q: %w", in.ParcelID, apperr.ErrInvalid)
		}
		l.ParcelID = id
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	return s.repo.Insert(ctx, l)
}
