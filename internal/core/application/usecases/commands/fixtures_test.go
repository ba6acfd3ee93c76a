package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role actor.Role) *actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newProduct(t *testing.T, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Cupcake", money(t, price))
	require.NoError(t, err)
	return p
}

func newOrderIn(t *testing.T, owner *actor.Actor, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), money(t, "30.00"), 2)
	require.NoError(t, err)

	var code *order.TrackingCode
	if status.ValidateCanHaveTrackingCode(true) == nil {
		c, err := order.GenerateTrackingCode()
		require.NoError(t, err)
		code = &c
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), owner.ID(), []*order.LineItem{item},
		money(t, "60.00"), kernel.ZeroMoney(), order.Pix, nil, status, code, time.Now())
	require.NoError(t, err)
	return o
}
