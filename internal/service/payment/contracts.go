package payment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/domain"
)

// paymentRepository defines storage operations required by the business layer.
type paymentRepository interface {
	List(ctx context.Context, email string) ([]domain.Payment, error)
	Insert(ctx context.Context, p *domain.Payment) (primitive.ObjectID, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status domain.PaymentStatus) error
}

// parcelStore is the slice of the parcel repository the payment flow needs.
type parcelStore interface {
	Get(ctx context.Context, id primitive.ObjectID) (domain.Parcel, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// IntentGateway creates a card payment intent and returns the client secret.
type IntentGateway interface {
	CreateIntent(ctx context.Context, amountInCents int64) (string, error)
}

type counter interface {
	Inc()
}
