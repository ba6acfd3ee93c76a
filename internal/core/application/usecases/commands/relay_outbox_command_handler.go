package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/ports"
)

// RelayObserver is told how many messages one relay run published and how
// many it left pending after a broker failure.
type RelayObserver interface {
	ObserveRelay(published, failed int)
}

type RelayOutboxResult struct {
	Published int
	Failed    int
}

// RelayOutboxCommandHandler publishes pending outbox messages oldest first.
// The batch is locked for the whole run. The first publish failure stops the
// run so that later events for the same order are not delivered ahead of it;
// messages already published are still marked sent.
type RelayOutboxCommandHandler struct {
	uowFactory RelayUoWFactory
	publisher  ports.EventPublisher
	observer   RelayObserver
	logger     *slog.Logger
}

func NewRelayOutboxCommandHandler(
	uowFactory RelayUoWFactory,
	publisher ports.EventPublisher,
	observer RelayObserver,
	logger *slog.Logger,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		observer:   observer,
		logger:     logger.With("component", "RelayOutboxCommandHandler"),
	}
}

func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayOutboxResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayOutboxResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	pending, err := outbox.FetchPending(ctx, cmd.Batch())
	if err != nil {
		return RelayOutboxResult{}, err
	}
	if len(pending) == 0 {
		return RelayOutboxResult{}, nil
	}

	var result RelayOutboxResult
	for i, msg := range pending {
		if err = h.publisher.Publish(ctx, msg); err != nil {
			result.Failed = len(pending) - i
			h.logger.WarnContext(ctx, "outbox publish failed, leaving message pending",
				"message_id", msg.ID.String(),
				"topic", msg.Topic,
				"error", err,
			)
			break
		}

		if err = outbox.MarkSent(ctx, msg.ID, time.Now().UTC()); err != nil {
			return RelayOutboxResult{}, err
		}
		result.Published++
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	if h.observer != nil {
		h.observer.ObserveRelay(result.Published, result.Failed)
	}
	if result.Published > 0 {
		h.logger.InfoContext(ctx, "outbox relayed", "published", result.Published, "pending", result.Failed)
	}

	return result, nil
}
