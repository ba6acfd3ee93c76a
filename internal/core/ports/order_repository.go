// Package ports defines the contracts between the storefront core and its
// infrastructure: repositories, the payment-instrument vault, the outbox and
// the unit of work that binds them to one transaction.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and tracking code changes of an existing order.
	// Line items and amounts are immutable and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction
	// ends. Concurrent transitions of the same order serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// TrackingCodeExists reports whether any order already carries code.
	TrackingCodeExists(ctx context.Context, code order.TrackingCode) (bool, error)
}
