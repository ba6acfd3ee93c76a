package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/rating"
)

type RatingRepository interface {
	// Add inserts a rating. A second rating for the same (order, product)
	// fails with errs.ConflictError.
	Add(ctx context.Context, r *rating.Rating) error

	Exists(ctx context.Context, orderID, productID kernel.UUID) (bool, error)

	// ValuesByProduct returns every rating value of the product.
	ValuesByProduct(ctx context.Context, productID kernel.UUID) ([]int, error)
}
