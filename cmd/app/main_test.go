package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/cmd"
	"storefront/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRoot(t *testing.T) (*cmd.CompositionRoot, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	app, err := cmd.NewCompositionRoot(cmd.Config{HTTPPort: "0"}, nil, reg, discardLogger())
	require.NoError(t, err)
	return app, reg
}

func TestRun_ReturnsConfigErrors(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")

	err := run(discardLogger())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRunWebServer_ReturnsListenError(t *testing.T) {
	app, reg := newTestRoot(t)
	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	err := runWebServer(ctx, app, reg, "not-a-port")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
	assert.NoError(t, ctx.Err())
}

func TestRunWebServer_StopsOnCancel(t *testing.T) {
	app, reg := newTestRoot(t)
	ctx, cancel := context.WithCancel(t.Context())

	done := make(chan error, 1)
	go func() { done <- runWebServer(ctx, app, reg, "0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
