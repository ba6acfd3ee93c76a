package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// OutboxMessage is an event waiting to be published. It is written in the
// same transaction as the state change it describes.
type OutboxMessage struct {
	ID        kernel.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
	SentAt    *time.Time
}

type OutboxRepository interface {
	Add(ctx context.Context, msg OutboxMessage) error

	// FetchPending returns up to limit unsent messages, oldest first, locked
	// so that concurrent relays skip them.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
