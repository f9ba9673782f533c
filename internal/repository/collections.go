package repository

import "go.mongodb.org/mongo-driver/mongo"

// Collection names inside the parcel database.
const (
	CollUsers    = "users"
	CollParcels  = "parcels"
	CollPayments = "payments"
	CollTracking = "tracking"
)

// Collections bundles every collection handle the service uses. All handles
// are bound here at startup, so no handler can ever see an unbound one.
type Collections struct {
	Users    *mongo.Collection
	Parcels  *mongo.Collection
	Payments *mongo.Collection
	Tracking *mongo.Collection
}

// NewCollections binds the collection handles of the named database.
func NewCollections(client *mongo.Client, dbName string) *Collections {
	db := client.Database(dbName)
	return &Collections{
		Users:    db.Collection(CollUsers),
		Parcels:  db.Collection(CollParcels),
		Payments: db.Collection(CollPayments),
		Tracking: db.Collection(CollTracking),
	}
}
