// Package productrepo persists catalog products and their rating summary.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/rating"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"size:255;not null"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	AverageRating float64         `gorm:"not null;default:0"`
	RatingCount   int             `gorm:"not null;default:0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	summary := p.RatingSummary()
	return ProductDTO{
		ID:            p.ID().Bytes(),
		Name:          p.Name(),
		Price:         p.Price().Amount(),
		AverageRating: summary.Average,
		RatingCount:   summary.Count,
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price, rating.Summary{
		Average: dto.AverageRating,
		Count:   dto.RatingCount,
	})
}
