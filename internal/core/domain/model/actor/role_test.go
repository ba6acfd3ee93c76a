package actor_test

import (
	"testing"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		code     string
		expected actor.Role
	}{
		{"CUSTOMER", actor.Customer},
		{"customer", actor.Customer},
		{"CLIENTE", actor.Customer},
		{"FINANCE", actor.Finance},
		{"financeiro", actor.Finance},
		{"LOGISTICS", actor.Logistics},
		{"Logistica", actor.Logistics},
		{"POST_SALE", actor.PostSale},
		{"POS_VENDA", actor.PostSale},
		{" admin ", actor.Admin},
		{"", actor.RoleUnknown},
		{"SUPERUSER", actor.RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, actor.ParseRole(tt.code))
		})
	}
}

func TestAllowedTargets(t *testing.T) {
	t.Run("should match the permission table", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]order.Status{order.PaymentApproved, order.PaymentRejected, order.InvoiceIssued},
			actor.AllowedTargets(actor.Finance))
		assert.ElementsMatch(t,
			[]order.Status{order.InPreparation, order.Shipped},
			actor.AllowedTargets(actor.Logistics))
		assert.ElementsMatch(t,
			[]order.Status{order.Received, order.ReturnRequested},
			actor.AllowedTargets(actor.Customer))
		assert.ElementsMatch(t,
			[]order.Status{order.Returning, order.Returned, order.ReturnCanceled},
			actor.AllowedTargets(actor.PostSale))
		assert.ElementsMatch(t, order.AllStatuses(), actor.AllowedTargets(actor.Admin))
	})

	t.Run("should return an empty set for unknown roles", func(t *testing.T) {
		assert.Empty(t, actor.AllowedTargets(actor.RoleUnknown))
		assert.Empty(t, actor.AllowedTargets(actor.Role(77)))
	})

	t.Run("should not expose the table", func(t *testing.T) {
		targets := actor.AllowedTargets(actor.Logistics)
		targets[0] = order.Canceled

		assert.NotContains(t, actor.AllowedTargets(actor.Logistics), order.Canceled)
	})

	t.Run("CanRequest should agree with AllowedTargets", func(t *testing.T) {
		roles := []actor.Role{
			actor.RoleUnknown, actor.Customer, actor.Finance,
			actor.Logistics, actor.PostSale, actor.Admin,
		}
		for _, r := range roles {
			allowed := actor.AllowedTargets(r)
			for _, s := range order.AllStatuses() {
				assert.Equal(t, containsStatus(allowed, s), r.CanRequest(s), "%s -> %s", r, s)
			}
			assert.False(t, r.CanRequest(order.Unknown))
		}
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "POST_SALE", actor.PostSale.String())
	assert.Equal(t, "UNKNOWN", actor.RoleUnknown.String())
	assert.True(t, actor.Admin.IsKnown())
	assert.False(t, actor.RoleUnknown.IsKnown())
}

func containsStatus(list []order.Status, s order.Status) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
