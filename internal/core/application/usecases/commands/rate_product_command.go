package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/rating"
	"storefront/internal/pkg/guard"
)

var ErrRateProductCommandIsNotConstructed = errors.New(
	"RateProductCommand must be created via NewRateProductCommand constructor",
)

// RateProductCommand rates a product bought in an order.
type RateProductCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	value     int

	guard guard.ConstructorGuard
}

// NewRateProductCommand validates the request; a value outside [1,5] is
// rejected before anything is loaded.
func NewRateProductCommand(actorID, orderID, productID kernel.UUID, value int) (RateProductCommand, error) {
	if err := rating.ValidateValue(value); err != nil {
		return RateProductCommand{}, err
	}
	if err := errors.Join(actorID.Validate(), orderID.Validate(), productID.Validate()); err != nil {
		return RateProductCommand{}, err
	}

	return RateProductCommand{
		actorID:   actorID,
		orderID:   orderID,
		productID: productID,
		value:     value,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RateProductCommand) Validate() error {
	return c.guard.Validate(ErrRateProductCommandIsNotConstructed)
}

func (c RateProductCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c RateProductCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c RateProductCommand) Value() int {
	return c.value
}
