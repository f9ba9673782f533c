package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsNotFound - signals that the error is a no-documents error.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
