package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/domain"
	"parcel-server/internal/service/parcel"
	"parcel-server/internal/service/payment"
	"parcel-server/internal/service/tracking"
	"parcel-server/internal/service/user"
)

type userUsecase interface {
	Register(ctx context.Context, u domain.User) (user.RegisterResult, error)
}

// NewUserUsecase wires a user Service into a userUsecase.
func NewUserUsecase(svc *user.Service) userUsecase {
	return svc
}

type parcelUsecase interface {
	List(ctx context.Context, email string) ([]domain.Parcel, error)
	Get(ctx context.Context, idHex string) (domain.Parcel, error)
	Create(ctx context.Context, p domain.Parcel) (primitive.ObjectID, error)
	Delete(ctx context.Context, idHex string) (int64, error)
}

// NewParcelUsecase wires a parcel Service into a parcelUsecase.
func NewParcelUsecase(svc *parcel.Service) parcelUsecase {
	return svc
}

type paymentUsecase interface {
	History(ctx context.Context, email string) ([]domain.Payment, error)
	Record(ctx context.Context, p *domain.Payment) (primitive.ObjectID, error)
	CreateIntent(ctx context.Context, amountInCents int64) (string, error)
}

// NewPaymentUsecase wires a payment Service into a paymentUsecase.
func NewPaymentUsecase(svc *payment.Service) paymentUsecase {
	return svc
}

type trackingUsecase interface {
	Append(ctx context.Context, in tracking.AppendInput) (primitive.ObjectID, error)
}

// NewTrackingUsecase wires a tracking Service into a trackingUsecase.
func NewTrackingUsecase(svc *tracking.Service) trackingUsecase {
	return svc
}
