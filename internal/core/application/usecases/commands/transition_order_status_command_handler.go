package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// OrderStatusChangedTopic is the default topic of status-changed events.
const OrderStatusChangedTopic = "order.status_changed"

// TransitionObserver is told about every committed transition.
type TransitionObserver interface {
	ObserveTransition(from, to order.Status)
}

// TransitionOrderStatusResult carries the new status and the tracking code,
// which is nil until the invoice is emitted.
type TransitionOrderStatusResult struct {
	Status       order.Status
	TrackingCode *order.TrackingCode
}

// OrderStatusChangedEvent is the payload published for each transition.
type OrderStatusChangedEvent struct {
	EventID      string    `json:"event_id"`
	OrderID      string    `json:"order_id"`
	OwnerID      string    `json:"owner_id"`
	ActorID      string    `json:"actor_id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	TrackingCode *string   `json:"tracking_code,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// TransitionOrderStatusCommandHandler runs the lifecycle engine under a row
// lock on the order: read, check and write happen in one transaction, so two
// concurrent requests against the same order cannot both pass the graph
// check against a stale status. The status-changed event is written to the
// outbox in the same transaction.
type TransitionOrderStatusCommandHandler struct {
	uowFactory TransitionUoWFactory
	engine     services.LifecycleEngine
	observer   TransitionObserver
	topic      string
	logger     *slog.Logger
}

// NewTransitionOrderStatusCommandHandler creates the handler. observer may be
// nil; an empty topic falls back to OrderStatusChangedTopic.
func NewTransitionOrderStatusCommandHandler(
	uowFactory TransitionUoWFactory,
	engine services.LifecycleEngine,
	observer TransitionObserver,
	topic string,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	if topic == "" {
		topic = OrderStatusChangedTopic
	}
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		observer:   observer,
		topic:      topic,
		logger:     logger.With("component", "TransitionOrderStatusCommandHandler"),
	}
}

func (h TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (TransitionOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	a, err := resolveActor(ctx, uow.ActorRepository(), cmd.ActorID())
	if err != nil {
		return TransitionOrderStatusResult{}, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return TransitionOrderStatusResult{}, err
	}

	tr, err := h.engine.Transition(a, o, cmd.Target(), func(code order.TrackingCode) (bool, error) {
		return orderRepo.TrackingCodeExists(ctx, code)
	})
	if err != nil {
		return TransitionOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	msg, err := h.statusChangedMessage(a.ID(), o, tr)
	if err != nil {
		return TransitionOrderStatusResult{}, err
	}
	if err = uow.OutboxRepository().Add(ctx, msg); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	if h.observer != nil {
		h.observer.ObserveTransition(tr.From, tr.To)
	}

	attrs := []any{
		"order_id", o.ID().String(),
		"actor_id", a.ID().String(),
		"role", a.Role().String(),
		"from", tr.From.String(),
		"to", tr.To.String(),
	}
	if tr.TrackingCode != nil {
		attrs = append(attrs, "tracking_code", tr.TrackingCode.String())
	}
	h.logger.InfoContext(ctx, "order status changed", attrs...)

	return TransitionOrderStatusResult{Status: tr.To, TrackingCode: tr.TrackingCode}, nil
}

func (h TransitionOrderStatusCommandHandler) statusChangedMessage(
	actorID kernel.UUID,
	o *order.Order,
	tr services.Transition,
) (ports.OutboxMessage, error) {
	now := time.Now().UTC()
	eventID := kernel.NewUUID()

	event := OrderStatusChangedEvent{
		EventID:    eventID.String(),
		OrderID:    o.ID().String(),
		OwnerID:    o.OwnerID().String(),
		ActorID:    actorID.String(),
		From:       tr.From.String(),
		To:         tr.To.String(),
		OccurredAt: now,
	}
	if tr.TrackingCode != nil {
		code := tr.TrackingCode.String()
		event.TrackingCode = &code
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return ports.OutboxMessage{}, fmt.Errorf("marshal status changed event: %w", err)
	}

	return ports.OutboxMessage{
		ID:        eventID,
		Topic:     h.topic,
		Key:       o.ID().String(),
		Payload:   payload,
		CreatedAt: now,
	}, nil
}
