// Package returns holds return requests for line items of received orders.
package returns

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn constructor")

// Return is a customer's request to send one line item of an order back.
// There is at most one Return per (order, line item). Creating a Return does
// not move the order; post-sale drives the order status separately.
type Return struct {
	id         kernel.UUID
	orderID    kernel.UUID
	lineItemID kernel.UUID
	reason     string
	createdAt  time.Time

	isConstructed bool
}

// NewReturn validates and creates a Return. The reason is trimmed and must
// not be blank.
func NewReturn(id, orderID, lineItemID kernel.UUID, reason string, createdAt time.Time) (*Return, error) {
	r := &Return{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setLineItemID(lineItemID),
		r.setReason(reason),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// ValidateReason rejects blank reasons.
func ValidateReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	return nil
}

func (r *Return) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIsNotConstructed
	}
	return nil
}

func (r *Return) ID() kernel.UUID {
	return r.id
}

func (r *Return) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Return) LineItemID() kernel.UUID {
	return r.lineItemID
}

func (r *Return) Reason() string {
	return r.reason
}

func (r *Return) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Return) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Return) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	r.orderID = orderID
	return nil
}

func (r *Return) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("line item id", err)
	}
	r.lineItemID = lineItemID
	return nil
}

func (r *Return) setReason(reason string) error {
	if err := ValidateReason(reason); err != nil {
		return err
	}
	r.reason = strings.TrimSpace(reason)
	return nil
}

func (r *Return) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	r.createdAt = createdAt
	return nil
}
