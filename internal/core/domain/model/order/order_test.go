package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPixOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]*order.LineItem{mustLineItem(t, "30.00", 2), mustLineItem(t, "10.00", 1)},
		order.Pix, nil, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func mustTrackingCode(t *testing.T) order.TrackingCode {
	t.Helper()
	code, err := order.GenerateTrackingCode()
	require.NoError(t, err)
	return code
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create order in EM_PROCESSAMENTO with computed total", func(t *testing.T) {
		items := []*order.LineItem{mustLineItem(t, "30.00", 2), mustLineItem(t, "10.00", 1)}

		o, err := order.NewOrder(id, ownerID, items, order.Pix, nil, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.IsOwnedBy(ownerID))
		assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, "70.00", o.Total().String())
		assert.Equal(t, "0.00", o.Discount().String())
		assert.Equal(t, order.Pix, o.PaymentMethod())
		assert.Nil(t, o.PaymentInstrumentID())
		assert.Nil(t, o.TrackingCode())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Len(t, o.LineItems(), 2)
	})

	t.Run("should link the instrument for credit card", func(t *testing.T) {
		instrumentID := kernel.NewUUID()

		o, err := order.NewOrder(id, ownerID, []*order.LineItem{mustLineItem(t, "5.00", 1)},
			order.CreditCard, &instrumentID, createdAt)

		require.NoError(t, err)
		require.NotNil(t, o.PaymentInstrumentID())
		assert.True(t, o.PaymentInstrumentID().IsEqual(instrumentID))
	})

	t.Run("should fail without line items", func(t *testing.T) {
		o, err := order.NewOrder(id, ownerID, nil, order.Pix, nil, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "line items")
	})

	t.Run("should fail with duplicated line items", func(t *testing.T) {
		item := mustLineItem(t, "5.00", 1)

		o, err := order.NewOrder(id, ownerID, []*order.LineItem{item, item}, order.Pix, nil, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should fail for credit card without instrument", func(t *testing.T) {
		o, err := order.NewOrder(id, ownerID, []*order.LineItem{mustLineItem(t, "5.00", 1)},
			order.CreditCard, nil, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "payment instrument")
	})

	t.Run("should fail for boleto with instrument", func(t *testing.T) {
		instrumentID := kernel.NewUUID()

		o, err := order.NewOrder(id, ownerID, []*order.LineItem{mustLineItem(t, "5.00", 1)},
			order.Boleto, &instrumentID, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, nil, order.UnknownPaymentMethod, nil, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "owner")
		assert.Contains(t, err.Error(), "line items")
		assert.Contains(t, err.Error(), "payment method")
		assert.Contains(t, err.Error(), "created at")
	})

	t.Run("should not alias the caller's slice", func(t *testing.T) {
		items := []*order.LineItem{mustLineItem(t, "5.00", 1)}
		o, err := order.NewOrder(id, ownerID, items, order.Pix, nil, createdAt)
		require.NoError(t, err)

		items[0] = mustLineItem(t, "99.00", 1)
		returned := o.LineItems()
		returned[0] = nil

		assert.Equal(t, "5.00", o.LineItems()[0].UnitPrice().String())
	})
}

func TestRestoreOrder(t *testing.T) {
	items := []*order.LineItem{mustLineItem(t, "30.00", 2)}

	t.Run("should restore a shipped order", func(t *testing.T) {
		code := mustTrackingCode(t)

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items,
			mustMoney(t, "60.00"), mustMoney(t, "5.00"), order.Pix, nil,
			order.Shipped, &code, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, "5.00", o.Discount().String())
		require.NotNil(t, o.TrackingCode())
		assert.True(t, o.TrackingCode().IsEqual(code))
	})

	t.Run("should reject discount greater than total", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items,
			mustMoney(t, "60.00"), mustMoney(t, "60.01"), order.Pix, nil,
			order.Processing, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "discount")
	})

	t.Run("should reject a tracking code before the invoice", func(t *testing.T) {
		code := mustTrackingCode(t)

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items,
			mustMoney(t, "60.00"), kernel.ZeroMoney(), order.Pix, nil,
			order.PaymentApproved, &code, time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject a missing tracking code after the invoice", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items,
			mustMoney(t, "60.00"), kernel.ZeroMoney(), order.Pix, nil,
			order.InPreparation, nil, time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items,
			mustMoney(t, "60.00"), kernel.ZeroMoney(), order.Pix, nil,
			order.Unknown, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})
}

func TestOrder_MoveTo(t *testing.T) {
	t.Run("should follow graph edges", func(t *testing.T) {
		o := newPixOrder(t)

		require.NoError(t, o.MoveTo(order.PaymentApproved))
		assert.Equal(t, order.PaymentApproved, o.Status())
	})

	t.Run("should reject missing edges without changing status", func(t *testing.T) {
		o := newPixOrder(t)

		err := o.MoveTo(order.Shipped)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("should require IssueInvoice to enter NOTA_FISCAL_EMITIDA", func(t *testing.T) {
		o := newPixOrder(t)
		require.NoError(t, o.MoveTo(order.PaymentApproved))

		err := o.MoveTo(order.InvoiceIssued)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.PaymentApproved, o.Status())
		assert.Nil(t, o.TrackingCode())
	})

	t.Run("should walk the full return path keeping the tracking code", func(t *testing.T) {
		o := newPixOrder(t)
		code := mustTrackingCode(t)

		require.NoError(t, o.MoveTo(order.PaymentApproved))
		require.NoError(t, o.IssueInvoice(code))
		for _, next := range []order.Status{
			order.InPreparation, order.Shipped, order.Received,
			order.ReturnRequested, order.Returning, order.Returned,
		} {
			require.NoError(t, o.MoveTo(next), next.String())
			require.NotNil(t, o.TrackingCode())
			assert.True(t, o.TrackingCode().IsEqual(code))
		}

		require.ErrorIs(t, o.MoveTo(order.ReturnCanceled), errs.ErrInvalidTransition)
	})

	t.Run("should stay terminal after rejection", func(t *testing.T) {
		o := newPixOrder(t)
		require.NoError(t, o.MoveTo(order.PaymentRejected))

		for _, s := range order.AllStatuses() {
			require.Error(t, o.MoveTo(s))
		}
		assert.Equal(t, order.PaymentRejected, o.Status())
	})
}

func TestOrder_IssueInvoice(t *testing.T) {
	t.Run("should set status and tracking code", func(t *testing.T) {
		o := newPixOrder(t)
		require.NoError(t, o.MoveTo(order.PaymentApproved))
		code := mustTrackingCode(t)

		require.NoError(t, o.IssueInvoice(code))

		assert.Equal(t, order.InvoiceIssued, o.Status())
		require.NotNil(t, o.TrackingCode())
		assert.Equal(t, code.String(), o.TrackingCode().String())
	})

	t.Run("should fail from EM_PROCESSAMENTO", func(t *testing.T) {
		o := newPixOrder(t)

		err := o.IssueInvoice(mustTrackingCode(t))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.TrackingCode())
	})

	t.Run("should fail with an unconstructed code", func(t *testing.T) {
		o := newPixOrder(t)
		require.NoError(t, o.MoveTo(order.PaymentApproved))

		require.ErrorIs(t, o.IssueInvoice(order.TrackingCode{}), errs.ErrValueIsRequired)
		assert.Equal(t, order.PaymentApproved, o.Status())
	})
}

func TestOrder_LineItem(t *testing.T) {
	o := newPixOrder(t)
	first := o.LineItems()[0]

	found, ok := o.LineItem(first.ID())
	require.True(t, ok)
	assert.Equal(t, first, found)

	_, ok = o.LineItem(kernel.NewUUID())
	assert.False(t, ok)
}
