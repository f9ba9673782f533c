package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"parcel-server/internal/domain"
)

// ParcelRepo represents parcel repository.
type ParcelRepo struct{ parcels *mongo.Collection }

// NewParcelRepo creates a new ParcelRepo.
func NewParcelRepo(c *Collections) *ParcelRepo { return &ParcelRepo{parcels: c.Parcels} }

// List returns parcels newest first. A non-empty email filters by creator.
func (r *ParcelRepo) List(ctx context.Context, email string) ([]domain.Parcel, error) {
	filter := bson.M{}
	if email != "" {
		filter[domain.ParcelKeyCreatedBy] = email
	}
	opts := options.Find().SetSort(bson.D{{Key: domain.ParcelKeyCreatedAt, Value: -1}})

	cur, err := r.parcels.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Parcel, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode parcels: %w", err)
	}
	return out, nil
}

// Get - returns parcel by its id, or nil when absent.
func (r *ParcelRepo) Get(ctx context.Context, id primitive.ObjectID) (domain.Parcel, error) {
	var p domain.Parcel
	err := r.parcels.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parcel %s: %w", id.Hex(), err)
	}
	return p, nil
}

// Insert stores the parcel document as-is and returns the generated id.
func (r *ParcelRepo) Insert(ctx context.Context, p domain.Parcel) (primitive.ObjectID, error) {
	res, err := r.parcels.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert parcel: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert parcel: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

// Delete removes the parcel by id and returns the deleted count (0 when absent).
func (r *ParcelRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.parcels.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete parcel %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}

// MarkPaid flips the parcel's payment status to paid. Returns false when the
// parcel is absent or already paid.
func (r *ParcelRepo) MarkPaid(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.parcels.UpdateOne(ctx,
		bson.M{"_id": id, domain.ParcelKeyPaymentStatus: bson.M{"$ne": domain.ParcelPaid}},
		bson.M{"$set": bson.M{domain.ParcelKeyPaymentStatus: domain.ParcelPaid}},
	)
	if err != nil {
		return false, fmt.Errorf("mark parcel %s paid: %w", id.Hex(), err)
	}
	return res.ModifiedCount > 0, nil
}
