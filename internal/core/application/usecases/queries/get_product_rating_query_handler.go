package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductRatingQueryHandler reads the stored summary columns of a product.
// They are kept equal to the mean and count of its ratings by the rating
// command, so no aggregation happens here.
type GetProductRatingQueryHandler struct {
	db *gorm.DB
}

func NewGetProductRatingQueryHandler(db *gorm.DB) GetProductRatingQueryHandler {
	return GetProductRatingQueryHandler{db: db}
}

func (h GetProductRatingQueryHandler) Handle(
	ctx context.Context,
	query GetProductRatingQuery,
) (GetProductRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductRatingQueryResponse{}, err
	}

	resp := GetProductRatingQueryResponse{ProductID: query.ProductID()}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			average_rating,
			rating_count
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row().Scan(&resp.AverageRating, &resp.RatingCount)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProductRatingQueryResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}
	if err != nil {
		return GetProductRatingQueryResponse{}, err
	}

	return resp, nil
}
