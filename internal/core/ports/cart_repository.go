package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository stores cart items. Attached cart items are the line items
// of their order.
type CartRepository interface {
	Add(ctx context.Context, item *cart.Item) error

	// GetAttachable returns, in the order of ids, the items that exist, are
	// owned by ownerID and are not attached to an order yet. Other ids are
	// skipped. Returned rows are locked until the transaction ends.
	GetAttachable(ctx context.Context, ownerID kernel.UUID, ids []kernel.UUID) ([]*cart.Item, error)

	// Attach stores the order binding of each item.
	Attach(ctx context.Context, items []*cart.Item) error

	// Exists reports whether a cart item with id exists at all.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
