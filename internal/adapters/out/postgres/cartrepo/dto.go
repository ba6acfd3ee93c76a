// Package cartrepo persists cart items. An item bound to an order is one of
// that order's line items and is never offered for checkout again.
package cartrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CartItemDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null"`
	Quantity  int        `gorm:"not null"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(item *cart.Item) CartItemDTO {
	var orderID *uuid.UUID
	if id := item.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return CartItemDTO{
		ID:        item.ID().Bytes(),
		OwnerID:   item.OwnerID().Bytes(),
		ProductID: item.ProductID().Bytes(),
		Quantity:  item.Quantity(),
		OrderID:   orderID,
	}
}

func toDomain(dto CartItemDTO) (*cart.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, oErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if oErr != nil {
			return nil, oErr
		}
		orderID = &oID
	}

	return cart.RestoreItem(id, ownerID, productID, dto.Quantity, orderID)
}
