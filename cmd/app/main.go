package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/cmd"
	storehttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/metrics"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/tracing"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	serviceName     = "storefront"
	shutdownTimeout = 10 * time.Second
)

// main is the only exit point; run returns instead of exiting so its
// deferred cleanup always executes.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(logger); err != nil {
		log.Fatalf("storefront: %v", err)
	}
}

func run(logger *slog.Logger) error {
	configs, err := getConfigs(logger)
	if err != nil {
		return err
	}

	tp, err := tracing.NewTracerProvider(serviceName, configs.JaegerEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := tracing.Shutdown(ctx, tp); shutdownErr != nil {
			logger.Error("failed to flush spans", "error", shutdownErr)
		}
	}()

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := cmd.NewCompositionRoot(configs, gormDB, reg, logger)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to close publisher", "error", closeErr)
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return fmt.Errorf("create jobs: %w", err)
	}
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runWebServer(ctx, app, reg, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file loaded, using process environment", "error", err)
	}

	config, err := cmd.NewConfigFromEnv(os.Getenv)
	if err != nil {
		return cmd.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// runWebServer serves until ctx is cancelled or the listener fails.
func runWebServer(ctx context.Context, app *cmd.CompositionRoot, gatherer prometheus.Gatherer, port string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(storehttp.TracingMiddleware(otel.Tracer("storefront/http"), otel.GetTextMapPropagator()))
	e.Use(storehttp.MetricsMiddleware(app.ServerMetrics()))

	app.CreateHTTPServer().Register(e)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
