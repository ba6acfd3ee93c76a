package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/rating"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price, err := kernel.MoneyFromString("19.90")
	require.NoError(t, err)

	t.Run("should create unrated product", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Cupcake", price)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Cupcake", p.Name())
		assert.Equal(t, "19.90", p.Price().String())
		assert.Equal(t, rating.Summary{}, p.RatingSummary())
	})

	t.Run("should join errors", func(t *testing.T) {
		p, err := product.NewProduct(kernel.UUID{}, " ", kernel.Money{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "money must be created")
	})
}

func TestProduct_ApplyRatingSummary(t *testing.T) {
	price, _ := kernel.MoneyFromString("10.00")
	p, err := product.NewProduct(kernel.NewUUID(), "Mug", price)
	require.NoError(t, err)

	t.Run("should replace the summary", func(t *testing.T) {
		require.NoError(t, p.ApplyRatingSummary(rating.Summary{Average: 4.5, Count: 2}))
		assert.Equal(t, rating.Summary{Average: 4.5, Count: 2}, p.RatingSummary())
	})

	t.Run("should reject averages outside the scale", func(t *testing.T) {
		require.ErrorIs(t, p.ApplyRatingSummary(rating.Summary{Average: 5.5, Count: 1}), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, p.ApplyRatingSummary(rating.Summary{Average: 0.5, Count: 1}), errs.ErrValueIsOutOfRange)
		assert.Equal(t, rating.Summary{Average: 4.5, Count: 2}, p.RatingSummary())
	})

	t.Run("should reject an average without ratings", func(t *testing.T) {
		require.ErrorIs(t, p.ApplyRatingSummary(rating.Summary{Average: 3, Count: 0}), errs.ErrValueIsInvalid)
	})

	t.Run("should reject a negative count", func(t *testing.T) {
		require.ErrorIs(t, p.ApplyRatingSummary(rating.Summary{Count: -1}), errs.ErrValueIsOutOfRange)
	})
}
