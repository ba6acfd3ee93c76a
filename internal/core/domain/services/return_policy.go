package services

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/returns"
	"storefront/internal/pkg/errs"
)

// ReturnPolicy holds the checks a return request must pass. They are split
// so the handler can interleave them with lookups in the documented order:
// order access first, then the line item, then the duplicate check.
type ReturnPolicy struct{}

func NewReturnPolicy() ReturnPolicy {
	return ReturnPolicy{}
}

// AuthorizeOrder checks that the actor may open a return on the order.
// Customers must own it and the order must be in SOLICITACAO_DEVOLUCAO.
// Staff and admin are not restricted; unknown roles are refused.
func (ReturnPolicy) AuthorizeOrder(a *actor.Actor, o *order.Order) error {
	if err := errors.Join(a.Validate(), o.Validate()); err != nil {
		return err
	}

	switch a.Role() {
	case actor.Customer:
		if !a.Owns(o.OwnerID()) {
			return errs.NewPermissionDeniedError(orderNotOwnedReason)
		}
		if o.Status() != order.ReturnRequested {
			return errs.NewInvalidStateError("order status", o.Status(), order.ReturnRequested)
		}
		return nil
	case actor.RoleUnknown:
		return errs.NewPermissionDeniedError("role " + a.Role().String() + " may not request returns")
	default:
		return nil
	}
}

// ResolveLineItem finds the line item on the order. existsElsewhere tells
// whether the id names a line item of some other order, which is reported as
// PermissionDenied rather than NotFound.
func (ReturnPolicy) ResolveLineItem(o *order.Order, lineItemID kernel.UUID, existsElsewhere bool) (*order.LineItem, error) {
	if item, ok := o.LineItem(lineItemID); ok {
		return item, nil
	}
	if existsElsewhere {
		return nil, errs.NewPermissionDeniedError("line item does not belong to the order")
	}
	return nil, errs.NewObjectNotFoundError("line item", lineItemID.String())
}

// Open creates the Return. The caller has already checked for duplicates.
func (ReturnPolicy) Open(o *order.Order, item *order.LineItem, reason string, now time.Time) (*returns.Return, error) {
	return returns.NewReturn(kernel.NewUUID(), o.ID(), item.ID(), reason, now)
}
