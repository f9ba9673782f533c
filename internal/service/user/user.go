package user

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/apperr"
	"parcel-server/internal/domain"
)

// RegisterResult reports whether a user document was inserted.
type RegisterResult struct {
	Inserted bool
	ID       primitive.ObjectID
}

// Service coordinates user registration.
type Service struct {
	repo             userRepository
	operationTimeout time.Duration
}

// NewService creates and configures a user Service.
func NewService(r userRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Register stores the user document on first registration of its email.
// A repeated registration is a no-op that reports the existing record.
func (s *Service) Register(ctx context.Context, u domain.User) (RegisterResult, error) {
	email := strings.TrimSpace(u.Email())
	if email == "" {
		return RegisterResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return RegisterResult{}, err
	}
	if existing != nil {
		return RegisterResult{Inserted: false}, nil
	}

	id, err := s.repo.Insert(ctx, u)
	if err != nil {
		return RegisterResult{}, err
	}
	return RegisterResult{Inserted: true, ID: id}, nil
}
