package parcel

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/apperr"
	"parcel-server/internal/domain"
)

// Service coordinates parcel CRUD and orchestrates repository calls.
type Service struct {
	repo             parcelRepository
	operationTimeout time.Duration
}

// NewService creates and configures a parcel Service.
func NewService(r parcelRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// List returns parcels newest first, optionally filtered by creator email.
func (s *Service) List(ctx context.Context, email string) ([]domain.Parcel, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, email)
}

// Get retrieves a parcel by its hex id. A malformed id counts as a
// retrieval failure, not a validation error.
func (s *Service) Get(ctx context.Context, idHex string) (domain.Parcel, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, fmt.Errorf("parse parcel id %q: %w", idHex, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

// Create persists the parcel document as-is and returns its generated id.
// No fields are validated or injected; the caller owns the shape.
func (s *Service) Create(ctx context.Context, p domain.Parcel) (primitive.ObjectID, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Insert(ctx, p)
}

// Delete removes a parcel by its hex id and returns the deleted count.
// Deleting an absent parcel yields 0, not an error.
func (s *Service) Delete(ctx context.Context, idHex string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, fmt.Errorf("parse parcel id %q: %w", idHex, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Delete(ctx, id)
}
