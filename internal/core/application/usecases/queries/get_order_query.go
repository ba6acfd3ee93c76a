// Package queries contains read operations for retrieving system state.
// Queries read with plain SQL and return read models, bypassing aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of an actor. Customers may only
// read their own orders; staff roles may read any.
//
// Example:
//
//	query, err := NewGetOrderQuery(actorID, orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actorID, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(actorID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actorID: actorID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ActorID() kernel.UUID { return q.actorID }
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the read model of an order.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	Status        order.Status
	Total         kernel.Money
	Discount      kernel.Money
	PaymentMethod order.PaymentMethod
	TrackingCode  *string
	CreatedAt     time.Time
	LineItems     []GetOrderLineItemResponse
}

type GetOrderLineItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	UnitPrice kernel.Money
	Quantity  int
}
