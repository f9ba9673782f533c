package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/dig"

	"parcel-server/internal/config"
	"parcel-server/internal/gateway/stripepay"
	"parcel-server/internal/http/handlers"
	"parcel-server/internal/http/router"
	"parcel-server/internal/logx"
	"parcel-server/internal/metrics"
	"parcel-server/internal/repository"
	"parcel-server/internal/service/parcel"
	"parcel-server/internal/service/payment"
	"parcel-server/internal/service/tracking"
	"parcel-server/internal/service/user"
)

// paymentsCounter counts successfully recorded payments.
type paymentsCounter prometheus.Counter

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*mongo.Client, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the document store connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*mongo.Client, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*mongo.Client, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
		return dbConnect(ctx, cfg.Mongo.ConnURI(), 10, time.Second)
	}
	providerCollections := func(client *mongo.Client, cfg *config.Config) *repository.Collections {
		return repository.NewCollections(client, cfg.Mongo.Name)
	}
	return provideAll(container, providerDB, providerCollections)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewUserRepo,
		repository.NewParcelRepo,
		repository.NewPaymentRepo,
		repository.NewTrackingRepo,
		func() time.Duration { return 3 * time.Second },
		func(cfg *config.Config, logger logx.Logger) payment.IntentGateway {
			return stripepay.New(cfg.Stripe.SecretKey, logger)
		},
		func() paymentsCounter {
			c := metrics.NewPaymentsRecordedTotal()
			prometheus.MustRegister(c)
			return c
		},
		func(repo *repository.UserRepo, timeout time.Duration) *user.Service {
			return user.NewService(repo, timeout)
		},
		func(repo *repository.ParcelRepo, timeout time.Duration) *parcel.Service {
			return parcel.NewService(repo, timeout)
		},
		func(
			payments *repository.PaymentRepo,
			parcels *repository.ParcelRepo,
			gw payment.IntentGateway,
			logger logx.Logger,
			recorded paymentsCounter,
			timeout time.Duration,
		) *payment.Service {
			return payment.NewService(payments, parcels, gw, logger, recorded, timeout)
		},
		func(repo *repository.TrackingRepo, timeout time.Duration) *tracking.Service {
			return tracking.NewService(repo, timeout)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewUserUsecase,
		handlers.NewUserHandler,
		handlers.NewParcelUsecase,
		handlers.NewParcelHandler,
		handlers.NewPaymentUsecase,
		handlers.NewPaymentHandler,
		handlers.NewTrackingUsecase,
		handlers.NewTrackingHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}
