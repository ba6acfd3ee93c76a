// Package product holds the catalog product as seen by ordering and rating.
// Catalog management itself lives outside this module; here a product only
// needs its price and its rating summary.
package product

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/rating"
	"storefront/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is a catalog entry. Its price is captured into line items when an
// order is placed; its rating summary is recomputed whenever a rating is
// added.
type Product struct {
	id            kernel.UUID
	name          string
	price         kernel.Money
	averageRating float64
	ratingCount   int

	isConstructed bool
}

// NewProduct creates an unrated product.
func NewProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	return RestoreProduct(id, name, price, rating.Summary{})
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money, summary rating.Summary) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.ApplyRatingSummary(summary),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}

// RatingSummary returns the current {average, count}.
func (p *Product) RatingSummary() rating.Summary {
	return rating.Summary{Average: p.averageRating, Count: p.ratingCount}
}

// ApplyRatingSummary replaces the stored summary. The average must lie in
// [1,5] unless the count is zero, in which case it must be zero.
func (p *Product) ApplyRatingSummary(summary rating.Summary) error {
	if summary.Count < 0 {
		return errs.NewValueIsOutOfRangeError("rating count", summary.Count, 0, "unbounded")
	}
	if summary.Count == 0 && summary.Average != 0 {
		return errs.NewValueIsInvalidError("average rating")
	}
	if summary.Count > 0 && (summary.Average < rating.MinValue || summary.Average > rating.MaxValue) {
		return errs.NewValueIsOutOfRangeError("average rating", summary.Average, rating.MinValue, rating.MaxValue)
	}
	p.averageRating = summary.Average
	p.ratingCount = summary.Count
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
