package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"parcel-server/internal/config"
	"parcel-server/internal/logx"
	"parcel-server/internal/metrics"
	"parcel-server/internal/repository"
	"parcel-server/internal/service/tracking"
	"parcel-server/internal/transport/kafka"
	"parcel-server/internal/worker"
)

// reconciledCounter counts payments repaired by the reconciler.
type reconciledCounter prometheus.Counter

// MustBuildWorkerContainer builds the dig container for the worker binary.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	container, err := buildWorkerContainer(ctx)
	if err != nil {
		log.Fatalf("failed to build worker container: %v", err)
	}
	return container
}

func buildWorkerContainer(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, connectDbWithRetry); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewParcelRepo,
		repository.NewPaymentRepo,
		repository.NewTrackingRepo,
		func(repo *repository.TrackingRepo) *tracking.Service {
			return tracking.NewService(repo, 3*time.Second)
		},
		func() reconciledCounter {
			c := metrics.NewPaymentsReconciledTotal()
			prometheus.MustRegister(c)
			return c
		},
		func(
			payments *repository.PaymentRepo,
			parcels *repository.ParcelRepo,
			logger logx.Logger,
			reconciled reconciledCounter,
			cfg *config.Config,
		) *worker.Reconciler {
			return worker.NewReconciler(
				payments, parcels, logger, reconciled,
				cfg.Reconciler.Interval, cfg.Reconciler.PendingAge,
			)
		},
		newTrackingEventsHandler,
		func(cfg *config.Config, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
		},
	)
}
