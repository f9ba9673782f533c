package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"parcel-server/internal/domain"
)

// PaymentRepo represents payment repository.
type PaymentRepo struct{ payments *mongo.Collection }

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(c *Collections) *PaymentRepo { return &PaymentRepo{payments: c.Payments} }

// List returns payments latest first. A non-empty email filters by payer.
func (r *PaymentRepo) List(ctx context.Context, email string) ([]domain.Payment, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	opts := options.Find().SetSort(bson.D{{Key: "paid_at", Value: -1}})

	cur, err := r.payments.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Payment, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return out, nil
}

// Insert stores the payment record and returns the generated id.
func (r *PaymentRepo) Insert(ctx context.Context, p *domain.Payment) (primitive.ObjectID, error) {
	res, err := r.payments.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert payment: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert payment: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

// SetStatus moves the payment record to the given status.
func (r *PaymentRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.PaymentStatus) error {
	_, err := r.payments.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("set payment %s status %s: %w", id.Hex(), status, err)
	}
	return nil
}

// ListPendingBefore returns payments stuck in pending since before the cutoff.
func (r *PaymentRepo) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Payment, error) {
	cur, err := r.payments.Find(ctx, bson.M{
		"status":  domain.PaymentPending,
		"paid_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return nil, fmt.Errorf("list pending payments: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Payment, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode pending payments: %w", err)
	}
	return out, nil
}
