package services

import (
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// transitionPolicy decides whether an actor may request target for an order.
// There is exactly one policy per role.
type transitionPolicy interface {
	authorize(a *actor.Actor, o *order.Order, target order.Status) error
}

func policyFor(role actor.Role) transitionPolicy {
	switch role {
	case actor.Customer:
		return customerPolicy{}
	case actor.Finance, actor.Logistics, actor.PostSale:
		return staffPolicy{role: role}
	case actor.Admin:
		return adminPolicy{}
	default:
		return denyAllPolicy{}
	}
}

// customerPolicy lets an owner confirm delivery and open a return.
type customerPolicy struct{}

//nolint:gochecknoglobals // immutable lookup table
var customerMoves = map[order.Status]order.Status{
	order.Shipped:  order.Received,
	order.Received: order.ReturnRequested,
}

func (customerPolicy) authorize(a *actor.Actor, o *order.Order, target order.Status) error {
	if !actor.Customer.CanRequest(target) {
		return roleDenied(actor.Customer, target)
	}
	if !a.Owns(o.OwnerID()) {
		return errs.NewPermissionDeniedError(orderNotOwnedReason)
	}
	if next, ok := customerMoves[o.Status()]; !ok || next != target {
		return errs.NewPermissionDeniedError(
			"customers cannot move an order from " + o.Status().String() + " to " + target.String())
	}
	return nil
}

// staffPolicy covers finance, logistics and post-sale: the graph gates the
// move and the role table gates the target. A request failing both is
// reported as an invalid transition.
type staffPolicy struct {
	role actor.Role
}

func (p staffPolicy) authorize(_ *actor.Actor, o *order.Order, target order.Status) error {
	if err := o.Status().ValidateTransition(target); err != nil {
		return err
	}
	if !p.role.CanRequest(target) {
		return roleDenied(p.role, target)
	}
	return nil
}

// adminPolicy may request any status but is still bound by the graph.
type adminPolicy struct{}

func (adminPolicy) authorize(_ *actor.Actor, o *order.Order, target order.Status) error {
	return o.Status().ValidateTransition(target)
}

type denyAllPolicy struct{}

func (denyAllPolicy) authorize(a *actor.Actor, _ *order.Order, _ order.Status) error {
	return errs.NewPermissionDeniedError("role " + a.Role().String() + " may not change order status")
}

func roleDenied(role actor.Role, target order.Status) error {
	return errs.NewPermissionDeniedError("role " + role.String() + " may not set status " + target.String())
}
