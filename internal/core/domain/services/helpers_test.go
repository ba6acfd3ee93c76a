package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role actor.Role) *actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newLineItem(t *testing.T, price string, quantity int) *order.LineItem {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), m, quantity)
	require.NoError(t, err)
	return item
}

// orderIn builds an order owned by owner and forces it into status by
// restoring it, issuing a tracking code when the status requires one.
func orderIn(t *testing.T, owner *actor.Actor, status order.Status) *order.Order {
	t.Helper()
	items := []*order.LineItem{newLineItem(t, "30.00", 2), newLineItem(t, "10.00", 1)}
	total, err := kernel.MoneyFromString("70.00")
	require.NoError(t, err)

	var code *order.TrackingCode
	if status.ValidateCanHaveTrackingCode(true) == nil {
		c, err := order.GenerateTrackingCode()
		require.NoError(t, err)
		code = &c
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), owner.ID(), items, total, kernel.ZeroMoney(),
		order.Pix, nil, status, code, time.Now())
	require.NoError(t, err)
	return o
}
