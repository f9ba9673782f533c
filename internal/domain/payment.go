package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus tracks a payment record through the two-phase recording sequence.
type PaymentStatus string

// List of possible payment statuses
const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentAbandoned PaymentStatus = "abandoned"
)

var allowedPaymentStatuses = [...]PaymentStatus{
	PaymentPending, PaymentCompleted, PaymentAbandoned,
}

// Valid checks if the PaymentStatus is valid
func (s PaymentStatus) Valid() bool {
	for _, v := range allowedPaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Payment represents a recorded parcel payment.
// ParcelID stays a hex string both on the wire and in storage; it is
// validated as an object id before any write.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ParcelID      string             `bson:"parcelId" json:"parcelId"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Status        PaymentStatus      `bson:"status" json:"status"`
	PaidAt        time.Time          `bson:"paid_at" json:"paid_at"`
	PaidAtString  string             `bson:"paid_at_string" json:"paid_at_string"`
}
