package payment

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackServerUnblocksOnReturn(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewCallbackServer(logger)
	require.NoError(t, srv.Start("127.0.0.1:0"))

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	resp, err := http.Get(srv.URL())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, srv.Wait(ctx))

	// a duplicate redirect must not panic on the closed channel
	resp2, err := http.Get(srv.URL())
	require.NoError(t, err)
	resp2.Body.Close()
}

func TestCallbackServerWaitTimesOut(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewCallbackServer(logger)
	require.NoError(t, srv.Start("127.0.0.1:0"))

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, srv.Wait(ctx), context.DeadlineExceeded)
}
