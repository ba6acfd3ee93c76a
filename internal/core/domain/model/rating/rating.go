// Package rating holds customer product ratings and their aggregate summary.
package rating

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const (
	MinValue = 1
	MaxValue = 5
)

var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating is a 1..5 score a customer gives a product for one order.
// There is at most one rating per (order, product) and ratings are never
// changed or removed.
type Rating struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	value     int
	createdAt time.Time

	isConstructed bool
}

// NewRating validates and creates a Rating.
func NewRating(id, orderID, productID kernel.UUID, value int, createdAt time.Time) (*Rating, error) {
	r := &Rating{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setProductID(productID),
		r.setValue(value),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// ValidateValue reports whether value is inside [MinValue, MaxValue].
func ValidateValue(value int) error {
	if value < MinValue || value > MaxValue {
		return errs.NewValueIsOutOfRangeError("rating", value, MinValue, MaxValue)
	}
	return nil
}

func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

func (r *Rating) ID() kernel.UUID        { return r.id }
func (r *Rating) OrderID() kernel.UUID   { return r.orderID }
func (r *Rating) ProductID() kernel.UUID { return r.productID }
func (r *Rating) Value() int             { return r.value }
func (r *Rating) CreatedAt() time.Time   { return r.createdAt }

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	r.orderID = orderID
	return nil
}

func (r *Rating) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product id", err)
	}
	r.productID = productID
	return nil
}

func (r *Rating) setValue(value int) error {
	if err := ValidateValue(value); err != nil {
		return err
	}
	r.value = value
	return nil
}

func (r *Rating) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	r.createdAt = createdAt
	return nil
}
