package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductRatingQuery_Valid(t *testing.T) {
	productID := kernel.NewUUID()

	query, err := queries.NewGetProductRatingQuery(productID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, productID, query.ProductID())
}

func TestGetProductRatingQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetProductRatingQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetProductRatingQueryIsNotConstructed)

	_, err = queries.NewGetProductRatingQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
