package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"parcel-server/internal/logx"
)

func withStubNewClient(t *testing.T, stub func(context.Context, string) (*mongo.Client, error)) {
	t.Helper()
	orig := newClient
	newClient = stub
	t.Cleanup(func() { newClient = orig })
}

func TestConnectDbWithRetry_SuccessFirstAttempt(t *testing.T) {
	ctx := context.Background()

	wantClient := &mongo.Client{}
	calls := 0

	withStubNewClient(t, func(_ context.Context, _ string) (*mongo.Client, error) {
		calls++
		return wantClient, nil
	})

	client, err := connectDbWithRetry(ctx, "mongodb://stub", 3, 10*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, wantClient, client)
	require.Equal(t, 1, calls)
}

func TestConnectDbWithRetry_ExhaustsRetries(t *testing.T) {
	ctx := context.Background()

	sentinelErr := errors.New("db boom")
	calls := 0

	withStubNewClient(t, func(_ context.Context, _ string) (*mongo.Client, error) {
		calls++
		return nil, sentinelErr
	})

	client, err := connectDbWithRetry(ctx, "mongodb://stub", 3, 0)
	require.Error(t, err)
	require.Nil(t, client)
	require.Equal(t, 3, calls)
	require.ErrorIs(t, err, sentinelErr)
}

func TestConnectDbWithRetry_ContextCanceledBetweenRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sentinelErr := errors.New("db boom")

	withStubNewClient(t, func(_ context.Context, _ string) (*mongo.Client, error) {
		return nil, sentinelErr
	})

	client, err := connectDbWithRetry(ctx, "mongodb://stub", 3, 50*time.Millisecond)
	require.Error(t, err)
	require.Nil(t, client)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGracefulShutdown_DoesNotPanic(t *testing.T) {
	t.Parallel()

	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	require.NotPanics(t, func() {
		gracefulShutdown(srv, logx.Nop(), 100*time.Millisecond)
	})
}
