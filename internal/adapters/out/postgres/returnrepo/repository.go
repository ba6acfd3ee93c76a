// Package returnrepo persists return requests. At most one return exists per
// (order, line item); the unique index enforces it across transactions.
package returnrepo

import (
	"context"
	"time"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/returns"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReturnDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_returns_order_line_item"`
	LineItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_returns_order_line_item"`
	Reason     string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (ReturnDTO) TableName() string {
	return "returns"
}

// GormReturnRepository implements ports.ReturnRepository using GORM.
type GormReturnRepository struct {
	db *gorm.DB
}

func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

func (r *GormReturnRepository) Add(ctx context.Context, ret *returns.Return) error {
	if err := ret.Validate(); err != nil {
		return err
	}

	dto := ReturnDTO{
		ID:         ret.ID().Bytes(),
		OrderID:    ret.OrderID().Bytes(),
		LineItemID: ret.LineItemID().Bytes(),
		Reason:     ret.Reason(),
		CreatedAt:  ret.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Conflict(err, "return",
			"order "+ret.OrderID().String()+", line item "+ret.LineItemID().String())
	}
	return nil
}

func (r *GormReturnRepository) Exists(ctx context.Context, orderID, lineItemID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ReturnDTO{}).
		Where("order_id = ? AND line_item_id = ?", orderID.Bytes(), lineItemID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByOrder returns the order's returns, oldest first.
func (r *GormReturnRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*returns.Return, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReturnDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	list := make([]*returns.Return, 0, len(dtos))
	for _, dto := range dtos {
		ret, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		list = append(list, ret)
	}
	return list, nil
}

func toDomain(dto ReturnDTO) (*returns.Return, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	lineItemID, err := kernel.UUIDFromBytes(dto.LineItemID[:])
	if err != nil {
		return nil, err
	}
	return returns.NewReturn(id, orderID, lineItemID, dto.Reason, dto.CreatedAt)
}
