package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem bypassed NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a cart item attached to an order: one product, a quantity and
// the unit price captured when the order was placed. Its ID is the cart item's
// ID, which return requests reference. A LineItem never changes after it is
// attached.
type LineItem struct {
	id        kernel.UUID
	productID kernel.UUID
	unitPrice kernel.Money
	quantity  int

	isConstructed bool
}

// NewLineItem validates and creates a LineItem. Quantity must be at least 1.
func NewLineItem(id, productID kernel.UUID, unitPrice kernel.Money, quantity int) (*LineItem, error) {
	item := &LineItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the LineItem was created via NewLineItem.
func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (l *LineItem) ID() kernel.UUID {
	return l.id
}

func (l *LineItem) ProductID() kernel.UUID {
	return l.productID
}

func (l *LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l *LineItem) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price × quantity.
func (l *LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Multiply(l.quantity)
}

func (l *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
