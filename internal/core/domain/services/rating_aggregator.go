package services

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/rating"
	"storefront/internal/pkg/errs"
)

// orderNotOwnedReason is the reason given when acting on someone else's order.
const orderNotOwnedReason = "order does not belong to you"

// RatingAggregator validates rating requests and keeps the product's rating
// summary equal to the mean and count of all its ratings.
type RatingAggregator struct{}

func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// AuthorizeOrder requires the order to exist and be owned by the actor.
// A missing order is reported as PermissionDenied, same as a foreign one,
// so ratings do not reveal which order ids exist.
func (RatingAggregator) AuthorizeOrder(a *actor.Actor, o *order.Order) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if o == nil || o.Validate() != nil || !a.Owns(o.OwnerID()) {
		return errs.NewPermissionDeniedError(orderNotOwnedReason)
	}
	return nil
}

// Rate creates the Rating for the product.
func (RatingAggregator) Rate(o *order.Order, p *product.Product, value int, now time.Time) (*rating.Rating, error) {
	if err := errors.Join(o.Validate(), p.Validate()); err != nil {
		return nil, err
	}
	return rating.NewRating(kernel.NewUUID(), o.ID(), p.ID(), value, now)
}

// Recompute sets the product's summary from every rating value it has,
// including the one just added.
func (RatingAggregator) Recompute(p *product.Product, values []int) (rating.Summary, error) {
	summary := rating.Summarize(values)
	if err := p.ApplyRatingSummary(summary); err != nil {
		return rating.Summary{}, err
	}
	return summary, nil
}
