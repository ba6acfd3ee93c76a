package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
)

// DefaultTrackingCodeAttempts bounds how many codes are drawn before giving up.
const DefaultTrackingCodeAttempts = 5

// ErrTrackingCodeExhausted is returned when every drawn tracking code was
// already taken. It is a fatal error, not a client one.
var ErrTrackingCodeExhausted = errors.New("could not issue a unique tracking code")

// TrackingCodeGenerator draws a candidate tracking code.
type TrackingCodeGenerator func() (order.TrackingCode, error)

// TrackingCodeInUse reports whether a code is already assigned to an order.
type TrackingCodeInUse func(code order.TrackingCode) (bool, error)

// Transition describes a status change that was applied to an order.
type Transition struct {
	From         order.Status
	To           order.Status
	TrackingCode *order.TrackingCode
}

// LifecycleEngine is the only component allowed to change an order's status.
//
// Key responsibilities:
//   - Gating the requested status by the actor's role
//   - Restricting customers to their own orders and to two moves
//   - Enforcing the transition graph for every other role, admin included
//   - Issuing a unique tracking code when the invoice is emitted
//
// Business rules:
//   - A failed check leaves the order untouched
//   - The tracking code is set once and never regenerated
//
// Example usage:
//
//	engine := services.NewLifecycleEngine(nil, 0)
//	tr, err := engine.Transition(a, o, order.InvoiceIssued, repo.TrackingCodeExists)
//	if errors.Is(err, errs.ErrPermissionDenied) {
//	    // role may not request this status
//	}
type LifecycleEngine struct {
	generate    TrackingCodeGenerator
	maxAttempts int
}

// NewLifecycleEngine creates the engine. A nil generator falls back to
// order.GenerateTrackingCode and a non-positive attempt count to
// DefaultTrackingCodeAttempts.
func NewLifecycleEngine(generate TrackingCodeGenerator, maxAttempts int) LifecycleEngine {
	if generate == nil {
		generate = order.GenerateTrackingCode
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultTrackingCodeAttempts
	}
	return LifecycleEngine{generate: generate, maxAttempts: maxAttempts}
}

// Authorize runs the role and sequencing checks without modifying the order.
//
// Returns:
//   - PermissionDeniedError when the role or ownership forbids the request
//   - InvalidTransitionError when the graph has no such edge
func (e LifecycleEngine) Authorize(a *actor.Actor, o *order.Order, target order.Status) error {
	if err := errors.Join(a.Validate(), o.Validate()); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	return policyFor(a.Role()).authorize(a, o, target)
}

// Transition authorizes the request and applies it to the order. When the
// target is NOTA_FISCAL_EMITIDA a tracking code not reported by inUse is
// issued.
//
// Parameters:
//   - a: The requesting actor
//   - o: The order, loaded under lock by the caller
//   - target: The requested status
//   - inUse: Uniqueness check for tracking codes; only called on invoice
//
// Returns:
//   - Transition: from/to and the tracking code (nil unless the order has one)
//   - error: authorization, sequencing, or tracking code errors
func (e LifecycleEngine) Transition(
	a *actor.Actor,
	o *order.Order,
	target order.Status,
	inUse TrackingCodeInUse,
) (Transition, error) {
	if err := e.Authorize(a, o, target); err != nil {
		return Transition{}, err
	}

	from := o.Status()

	if target == order.InvoiceIssued {
		code, err := e.issueTrackingCode(inUse)
		if err != nil {
			return Transition{}, err
		}
		if err = o.IssueInvoice(code); err != nil {
			return Transition{}, err
		}
	} else if err := o.MoveTo(target); err != nil {
		return Transition{}, err
	}

	return Transition{From: from, To: o.Status(), TrackingCode: o.TrackingCode()}, nil
}

func (e LifecycleEngine) issueTrackingCode(inUse TrackingCodeInUse) (order.TrackingCode, error) {
	for range e.maxAttempts {
		code, err := e.generate()
		if err != nil {
			return order.TrackingCode{}, err
		}
		if inUse == nil {
			return code, nil
		}
		taken, err := inUse(code)
		if err != nil {
			return order.TrackingCode{}, fmt.Errorf("check tracking code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return order.TrackingCode{}, ErrTrackingCodeExhausted
}
