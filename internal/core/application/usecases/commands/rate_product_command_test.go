package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateProductCommand(t *testing.T) {
	actorID, orderID, productID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	for _, value := range []int{1, 3, 5} {
		cmd, err := commands.NewRateProductCommand(actorID, orderID, productID, value)
		require.NoError(t, err)
		assert.Equal(t, value, cmd.Value())
		assert.Equal(t, productID, cmd.ProductID())
	}

	for _, value := range []int{0, 6, -1} {
		_, err := commands.NewRateProductCommand(actorID, orderID, productID, value)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, errs.IsInvalidInput(err))
	}

	_, err := commands.NewRateProductCommand(actorID, kernel.UUID{}, productID, 4)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero commands.RateProductCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrRateProductCommandIsNotConstructed)
}
