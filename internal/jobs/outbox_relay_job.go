package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayOutboxResult, error)
}

// OutboxRelayJob publishes pending status-changed events on a cron schedule.
type OutboxRelayJob struct {
	handler  outboxRelayer
	cmd      commands.RelayOutboxCommand
	schedule string
	cron     *cron.Cron
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewOutboxRelayJob creates the relay job. An empty schedule falls back to
// DefaultOutboxRelaySchedule.
func NewOutboxRelayJob(
	handler outboxRelayer,
	schedule string,
	batch int,
	logger *slog.Logger,
) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batch)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}

	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		tracer:   otel.Tracer("storefront/jobs"),
		logger:   logger.With("component", "outbox_relay_job"),
	}, nil
}

// RunOnce relays a single batch. Each run is one trace; its context reaches
// the published message headers.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	ctx, span := j.tracer.Start(ctx, "outbox.relay",
		trace.WithAttributes(attribute.Int("outbox.batch", j.cmd.Batch())))
	defer span.End()

	res, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "relay failed")
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		return
	}
	span.SetAttributes(
		attribute.Int("outbox.published", res.Published),
		attribute.Int("outbox.failed", res.Failed),
	)
}

func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
