package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetProductRatingQueryIsNotConstructed = errors.New(
	"GetProductRatingQuery must be created via NewGetProductRatingQuery constructor",
)

// GetProductRatingQuery reads the rating summary of a product. It is public
// catalog data and needs no actor.
type GetProductRatingQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductRatingQuery(productID kernel.UUID) (GetProductRatingQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductRatingQuery{}, err
	}
	return GetProductRatingQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetProductRatingQueryIsNotConstructed)
}

func (q GetProductRatingQuery) ProductID() kernel.UUID {
	return q.productID
}

type GetProductRatingQueryResponse struct {
	ProductID     kernel.UUID
	AverageRating float64
	RatingCount   int
}
