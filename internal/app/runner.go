package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/dig"

	"parcel-server/internal/config"
	"parcel-server/internal/http/pprofserver"
	"parcel-server/internal/logx"
)

// MustRun runs the HTTP server and exits the process on failure.
func MustRun(container *dig.Container) {
	switch err := run(container); {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, http.ErrServerClosed):
		log.Println("server closed")
	default:
		log.Fatalf("run: %v", err)
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(
		ctx context.Context,
		cfg *config.Config,
		logger logx.Logger,
		server *http.Server,
		client *mongo.Client,
	) error {
		startPprof(cfg, logger)
		startServer(server, logger)
		waitForShutdown(ctx, logger)
		gracefulShutdown(server, logger, 15*time.Second)
		closeResources(client, logger)
		return nil
	})
}

func startPprof(cfg *config.Config, logger logx.Logger) {
	if !cfg.Pprof.Enabled {
		return
	}
	handler := pprofserver.Handler(pprofserver.Config{
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	})
	go func() {
		logger.Info("pprof server listening", logx.String("addr", cfg.Pprof.Addr))
		if err := http.ListenAndServe(cfg.Pprof.Addr, handler); err != nil {
			logger.Error("pprof server stopped", logx.Any("err", err))
		}
	}()
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("server listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", logx.Any("err", err))
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutdown signal received")
}

func gracefulShutdown(server *http.Server, logger logx.Logger, timeout time.Duration) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", logx.Any("err", err))
		if err := server.Close(); err != nil {
			logger.Error("server close failed", logx.Any("err", err))
		}
	}
}

func closeResources(client *mongo.Client, logger logx.Logger) {
	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(disconnectCtx); err != nil {
		logger.Error("document store disconnect failed", logx.Any("err", err))
	}
}
