package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository is the catalog lookup used by ordering and rating.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error

	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate locks the product row until the transaction ends. Ratings
	// of the same product serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// UpdateRatingSummary writes the average and count back to the product.
	UpdateRatingSummary(ctx context.Context, p *product.Product) error
}
