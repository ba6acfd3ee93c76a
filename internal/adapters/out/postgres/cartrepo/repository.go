package cartrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Conflict(err, "cart item", item.ID().String())
	}
	return nil
}

// GetAttachable locks and returns the owner's unattached items among ids,
// keeping the order of ids.
func (r *GormCartRepository) GetAttachable(
	ctx context.Context,
	ownerID kernel.UUID,
	ids []kernel.UUID,
) ([]*cart.Item, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*cart.Item{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ? AND owner_id = ? AND order_id IS NULL", raw, ownerID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]CartItemDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, id := range raw {
		dto, ok := byID[id]
		if !ok {
			continue
		}
		delete(byID, id)

		item, itemErr := toDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// Attach writes the order id of each item. An item that was attached in the
// meantime fails the whole call with a conflict.
func (r *GormCartRepository) Attach(ctx context.Context, items []*cart.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.IsAttached() {
			return errs.NewValueIsInvalidErrorWithCause("cart item",
				fmt.Errorf("%s is not attached to an order", item.ID()))
		}

		result := r.db.WithContext(ctx).Model(&CartItemDTO{}).
			Where("id = ? AND order_id IS NULL", item.ID().Bytes()).
			Update("order_id", item.OrderID().Bytes())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewConflictError("order binding", "cart item "+item.ID().String())
		}
	}
	return nil
}

func (r *GormCartRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var dto CartItemDTO
	err := r.db.WithContext(ctx).Select("id").First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
