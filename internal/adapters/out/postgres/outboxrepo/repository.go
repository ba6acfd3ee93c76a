// Package outboxrepo stores events written in the same transaction as the
// state change they describe, until the relay publishes them.
package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MessageDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Topic     string          `gorm:"size:255;not null"`
	Key       string          `gorm:"size:255;not null"`
	Payload   json.RawMessage `gorm:"type:jsonb;not null"`
	CreatedAt time.Time       `gorm:"not null;index:idx_outbox_pending,where:sent_at IS NULL"`
	SentAt    *time.Time
}

func (MessageDTO) TableName() string {
	return "outbox"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, msg ports.OutboxMessage) error {
	if err := msg.ID.Validate(); err != nil {
		return err
	}
	if msg.Topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}

	dto := MessageDTO{
		ID:        msg.ID.Bytes(),
		Topic:     msg.Topic,
		Key:       msg.Key,
		Payload:   msg.Payload,
		CreatedAt: msg.CreatedAt,
		SentAt:    msg.SentAt,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchPending skips rows locked by another relay, so two relays never
// publish the same message concurrently.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return []ports.OutboxMessage{}, nil
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		messages = append(messages, ports.OutboxMessage{
			ID:        id,
			Topic:     dto.Topic,
			Key:       dto.Key,
			Payload:   dto.Payload,
			CreatedAt: dto.CreatedAt,
			SentAt:    dto.SentAt,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ? AND sent_at IS NULL", id.Bytes()).
		Update("sent_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pending outbox message", id.String())
	}
	return nil
}
