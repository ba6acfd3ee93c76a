// Package ratingrepo persists product ratings, one per (order, product).
package ratingrepo

import (
	"context"
	"time"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/rating"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_order_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_order_product;index"`
	Value     int       `gorm:"type:smallint;not null;check:chk_ratings_value,value BETWEEN 1 AND 5"`
	CreatedAt time.Time `gorm:"not null"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

// GormRatingRepository implements ports.RatingRepository using GORM.
type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

func (r *GormRatingRepository) Add(ctx context.Context, rt *rating.Rating) error {
	if err := rt.Validate(); err != nil {
		return err
	}

	dto := RatingDTO{
		ID:        rt.ID().Bytes(),
		OrderID:   rt.OrderID().Bytes(),
		ProductID: rt.ProductID().Bytes(),
		Value:     rt.Value(),
		CreatedAt: rt.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Conflict(err, "rating",
			"order "+rt.OrderID().String()+", product "+rt.ProductID().String())
	}
	return nil
}

func (r *GormRatingRepository) Exists(ctx context.Context, orderID, productID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RatingDTO{}).
		Where("order_id = ? AND product_id = ?", orderID.Bytes(), productID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRatingRepository) ValuesByProduct(ctx context.Context, productID kernel.UUID) ([]int, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	values := make([]int, 0)
	err := r.db.WithContext(ctx).Model(&RatingDTO{}).
		Where("product_id = ?", productID.Bytes()).
		Order("created_at, id").
		Pluck("value", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
