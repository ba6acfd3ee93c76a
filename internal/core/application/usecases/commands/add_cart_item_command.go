package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts a quantity of a catalog product in the actor's cart.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(actorID, productID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	var quantityErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(actorID.Validate(), productID.Validate(), quantityErr); err != nil {
		return AddCartItemCommand{}, err
	}

	return AddCartItemCommand{
		actorID:   actorID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}
