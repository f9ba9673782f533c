package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"parcel-server/internal/repository"
)

var newClient = repository.NewClient

func connectDbWithRetry(ctx context.Context, uri string, retries int, delay time.Duration) (*mongo.Client, error) {
	var lastErr error
	const attemptTimeout = 5 * time.Second
	for i := 1; i <= retries; i++ {
		retriesCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		client, err := newClient(retriesCtx, uri)
		cancel()
		if err == nil {
			log.Printf("document store connected on attempt %d", i)
			return client, nil
		}
		lastErr = err
		log.Printf("document store connect failed (attempt %d/%d): %v", i, retries, err)
		if i < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("document store connect failed after %d attempts: %w", retries, lastErr)
}
