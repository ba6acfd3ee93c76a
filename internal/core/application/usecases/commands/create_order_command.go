package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order from cart items of the actor.
//
// Example:
//
//	card, err := payment.NewCardDetails(number, holder, "12/29", cvv)
//	cmd, err := NewCreateOrderCommand(actorID, []kernel.UUID{itemA, itemB}, order.CreditCard, &card)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	res, err := handler.Handle(ctx, cmd)
//	fmt.Printf("Order %s placed, total %s", res.OrderID, res.Total)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actorID       kernel.UUID
	lineItemIDs   []kernel.UUID
	paymentMethod order.PaymentMethod
	card          *payment.CardDetails

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. Duplicate line item ids are
// collapsed. Card details are required for CREDIT_CARD and ignored otherwise.
func NewCreateOrderCommand(
	actorID kernel.UUID,
	lineItemIDs []kernel.UUID,
	paymentMethod order.PaymentMethod,
	card *payment.CardDetails,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setLineItemIDs(lineItemIDs),
		cmd.setPayment(paymentMethod, card),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// LineItemIDs returns the requested cart item ids in request order.
func (c CreateOrderCommand) LineItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.lineItemIDs))
	copy(ids, c.lineItemIDs)
	return ids
}

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Card returns the card details, nil unless paying by credit card.
func (c CreateOrderCommand) Card() *payment.CardDetails {
	return c.card
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setLineItemIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	unique := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("line items", err)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	c.lineItemIDs = unique
	return nil
}

func (c *CreateOrderCommand) setPayment(method order.PaymentMethod, card *payment.CardDetails) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method

	if !method.RequiresInstrument() {
		return nil
	}
	if card == nil {
		return errs.NewValueIsRequiredError("card details")
	}
	if err := card.Validate(); err != nil {
		return err
	}
	details := *card
	c.card = &details
	return nil
}
