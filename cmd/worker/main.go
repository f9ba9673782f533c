package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"parcel-server/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := app.MustBuildWorkerContainer(ctx)
	app.MustRunWorker(container)
}
