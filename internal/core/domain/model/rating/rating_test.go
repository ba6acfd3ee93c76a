package rating_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/rating"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	now := time.Now()

	for value := rating.MinValue; value <= rating.MaxValue; value++ {
		r, err := rating.NewRating(kernel.NewUUID(), orderID, productID, value, now)
		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, value, r.Value())
		assert.True(t, r.OrderID().IsEqual(orderID))
		assert.True(t, r.ProductID().IsEqual(productID))
	}

	for _, value := range []int{-1, 0, 6, 100} {
		r, err := rating.NewRating(kernel.NewUUID(), orderID, productID, value, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, value)
		assert.True(t, errs.IsInvalidInput(err))
		assert.Nil(t, r)
	}

	t.Run("should join errors", func(t *testing.T) {
		r, err := rating.NewRating(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, 9, time.Time{})

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "product id")
		assert.Contains(t, err.Error(), "rating is 9")
		assert.Contains(t, err.Error(), "created at")
	})
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		expected rating.Summary
	}{
		{"empty", nil, rating.Summary{}},
		{"single", []int{4}, rating.Summary{Average: 4, Count: 1}},
		{"mean of two", []int{4, 5}, rating.Summary{Average: 4.5, Count: 2}},
		{"non terminating", []int{1, 1, 2}, rating.Summary{Average: 4.0 / 3.0, Count: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rating.Summarize(tt.values)
			assert.Equal(t, tt.expected.Count, got.Count)
			assert.InDelta(t, tt.expected.Average, got.Average, 1e-9)
		})
	}
}
