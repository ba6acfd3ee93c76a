package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/returns"
)

type ReturnRepository interface {
	// Add inserts a return. A second return for the same (order, line item)
	// fails with errs.ConflictError.
	Add(ctx context.Context, r *returns.Return) error

	Exists(ctx context.Context, orderID, lineItemID kernel.UUID) (bool, error)

	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*returns.Return, error)
}
