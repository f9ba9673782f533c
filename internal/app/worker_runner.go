package app

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/dig"

	"parcel-server/internal/logx"
	"parcel-server/internal/transport/kafka"
	"parcel-server/internal/worker"
)

// MustRunWorker runs the worker and exits the process on failure.
func MustRunWorker(container *dig.Container) {
	switch err := runWorker(container); {
	case err == nil, errors.Is(err, context.Canceled):
	default:
		log.Fatalf("worker run: %v", err)
	}
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(
		ctx context.Context,
		logger logx.Logger,
		client *mongo.Client,
		rec *worker.Reconciler,
		consumer *kafka.Consumer,
	) error {
		defer closeWorker(client, consumer, logger)

		logger.Info("worker started")
		if consumer == nil {
			logger.Warn("kafka not configured, running reconciler only")
			return rec.Run(ctx)
		}

		go func() {
			if err := rec.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("reconciler stopped", logx.Any("err", err))
			}
		}()
		return consumer.Run(ctx)
	})
}

func closeWorker(client *mongo.Client, consumer *kafka.Consumer, logger logx.Logger) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka consumer close failed", logx.Any("err", err))
	}

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(disconnectCtx); err != nil {
		logger.Error("document store disconnect failed", logx.Any("err", err))
	}
}
