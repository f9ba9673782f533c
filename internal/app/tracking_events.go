package app

import (
	"context"
	"errors"

	"parcel-server/internal/apperr"
	"parcel-server/internal/service/tracking"
	"parcel-server/internal/transport/kafka"
)

// newTrackingEventsHandler adapts the tracking service to the Kafka consumer.
// Validation failures are permanent and must not block the partition.
func newTrackingEventsHandler(svc *tracking.Service) kafka.HandleFunc {
	return func(ctx context.Context, in tracking.AppendInput) error {
		_, err := svc.Append(ctx, in)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}
