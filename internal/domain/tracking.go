package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrackingLog is one tracking event for a parcel.
type TrackingLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TrackingID string             `bson:"tracking_id" json:"tracking_id"`
	ParcelID   primitive.ObjectID `bson:"parcel_id,omitempty" json:"parcel_id,omitempty"`
	Status     string             `bson:"status" json:"status"`
	Message    string             `bson:"message" json:"message"`
	Time       time.Time          `bson:"time" json:"time"`
	UpdatedBy  string             `bson:"updated_by" json:"updated_by"`
}
