// Package cart holds the items an actor collects before placing an order.
// A cart item becomes an order line item when it is attached to an order.
package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem or RestoreItem constructor")

// Item is one product and quantity in an actor's cart. It is attachable
// while it has no order; once attached it never changes again.
type Item struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	productID kernel.UUID
	quantity  int
	orderID   *kernel.UUID

	isConstructed bool
}

// NewItem puts a product in the owner's cart.
func NewItem(id, ownerID, productID kernel.UUID, quantity int) (*Item, error) {
	return RestoreItem(id, ownerID, productID, quantity, nil)
}

// RestoreItem rebuilds a cart item from storage.
func RestoreItem(id, ownerID, productID kernel.UUID, quantity int, orderID *kernel.UUID) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		productID.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return nil, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
		attached := *orderID
		item.orderID = &attached
	}

	item.id = id
	item.ownerID = ownerID
	item.productID = productID
	item.quantity = quantity
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) OwnerID() kernel.UUID {
	return i.ownerID
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

// OrderID returns the order the item is attached to, or nil.
func (i *Item) OrderID() *kernel.UUID {
	return i.orderID
}

func (i *Item) IsAttached() bool {
	return i.orderID != nil
}

// AttachTo binds the item to an order. An item is attached at most once.
func (i *Item) AttachTo(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if i.orderID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"cart item", fmt.Errorf("%s is already attached to order %s", i.id, i.orderID))
	}
	i.orderID = &orderID
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
