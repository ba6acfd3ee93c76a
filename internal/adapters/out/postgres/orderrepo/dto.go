// Package orderrepo persists order aggregates in the orders and
// order_line_items tables.
package orderrepo

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Line items are loaded through the has-many
// association and ordered by Position.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total               decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Discount            decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PaymentMethod       string          `gorm:"size:32;not null"`
	PaymentInstrumentID *uuid.UUID      `gorm:"type:uuid"`
	Status              string          `gorm:"size:32;not null;index"`
	TrackingCode        *string         `gorm:"size:13;uniqueIndex"`
	CreatedAt           time.Time       `gorm:"not null"`
	LineItems           []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO keeps the unit price as it was when the order was created.
// Its id is the id of the cart item it was created from.
type LineItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity  int             `gorm:"not null"`
	Position  int             `gorm:"not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var instrumentID *uuid.UUID
	if id := o.PaymentInstrumentID(); id != nil {
		raw := id.Bytes()
		instrumentID = &raw
	}

	var trackingCode *string
	if code := o.TrackingCode(); code != nil {
		value := code.String()
		trackingCode = &value
	}

	items := o.LineItems()
	lineItems := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		lineItems = append(lineItems, LineItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   o.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
			Position:  i,
		})
	}

	return OrderDTO{
		ID:                  o.ID().Bytes(),
		OwnerID:             o.OwnerID().Bytes(),
		Total:               o.Total().Amount(),
		Discount:            o.Discount().Amount(),
		PaymentMethod:       o.PaymentMethod().String(),
		PaymentInstrumentID: instrumentID,
		Status:              o.Status().String(),
		TrackingCode:        trackingCode,
		CreatedAt:           o.CreatedAt(),
		LineItems:           lineItems,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	total, totalErr := kernel.NewMoney(dto.Total)
	discount, discountErr := kernel.NewMoney(dto.Discount)
	method, methodErr := order.ParsePaymentMethod(dto.PaymentMethod)
	status, statusErr := order.ParseStatus(dto.Status)
	if err = errors.Join(totalErr, discountErr, methodErr, statusErr); err != nil {
		return nil, err
	}

	var instrumentID *kernel.UUID
	if dto.PaymentInstrumentID != nil {
		iID, iErr := kernel.UUIDFromBytes((*dto.PaymentInstrumentID)[:])
		if iErr != nil {
			return nil, iErr
		}
		instrumentID = &iID
	}

	var trackingCode *order.TrackingCode
	if dto.TrackingCode != nil {
		code, codeErr := order.NewTrackingCode(*dto.TrackingCode)
		if codeErr != nil {
			return nil, codeErr
		}
		trackingCode = &code
	}

	return order.RestoreOrder(id, ownerID, lineItems, total, discount, method, instrumentID,
		status, trackingCode, dto.CreatedAt)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	return order.NewLineItem(id, productID, unitPrice, dto.Quantity)
}
