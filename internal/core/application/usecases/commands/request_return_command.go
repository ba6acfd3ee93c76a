package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/returns"
	"storefront/internal/pkg/guard"
)

var ErrRequestReturnCommandIsNotConstructed = errors.New(
	"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
)

// RequestReturnCommand opens a return for one line item of an order.
type RequestReturnCommand struct { //nolint:recvcheck //using for validation
	actorID    kernel.UUID
	orderID    kernel.UUID
	lineItemID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRequestReturnCommand validates the request. A blank reason is reported
// before anything else is looked at.
func NewRequestReturnCommand(actorID, orderID, lineItemID kernel.UUID, reason string) (RequestReturnCommand, error) {
	if err := returns.ValidateReason(reason); err != nil {
		return RequestReturnCommand{}, err
	}
	if err := errors.Join(actorID.Validate(), orderID.Validate(), lineItemID.Validate()); err != nil {
		return RequestReturnCommand{}, err
	}

	return RequestReturnCommand{
		actorID:    actorID,
		orderID:    orderID,
		lineItemID: lineItemID,
		reason:     strings.TrimSpace(reason),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

func (c RequestReturnCommand) ActorID() kernel.UUID    { return c.actorID }
func (c RequestReturnCommand) OrderID() kernel.UUID    { return c.orderID }
func (c RequestReturnCommand) LineItemID() kernel.UUID { return c.lineItemID }
func (c RequestReturnCommand) Reason() string          { return c.reason }
