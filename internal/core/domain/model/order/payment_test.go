package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		code     string
		expected order.PaymentMethod
	}{
		{"PIX", order.Pix},
		{"pix", order.Pix},
		{"BOLETO", order.Boleto},
		{"CREDIT_CARD", order.CreditCard},
		{"cartao", order.CreditCard},
		{"CARTAO_DE_CREDITO", order.CreditCard},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			m, err := order.ParsePaymentMethod(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}

	t.Run("should reject unknown methods", func(t *testing.T) {
		m, err := order.ParsePaymentMethod("CHEQUE")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.UnknownPaymentMethod, m)
	})
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, order.CreditCard.RequiresInstrument())
	assert.False(t, order.Pix.RequiresInstrument())
	assert.False(t, order.Boleto.RequiresInstrument())

	require.NoError(t, order.Boleto.Validate())
	require.ErrorIs(t, order.UnknownPaymentMethod.Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "Unknown", order.PaymentMethod(42).String())
}
