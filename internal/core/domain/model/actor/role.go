package actor

import (
	"strings"

	"storefront/internal/core/domain/model/order"
)

// Role is the closed set of actor roles.
type Role int

const (
	// RoleUnknown is any unrecognised role. It may not request anything.
	RoleUnknown Role = iota
	Customer
	Finance
	Logistics
	PostSale
	Admin
)

//nolint:gochecknoglobals // immutable lookup table
var roleCodes = map[Role]string{
	Customer:  "CUSTOMER",
	Finance:   "FINANCE",
	Logistics: "LOGISTICS",
	PostSale:  "POST_SALE",
	Admin:     "ADMIN",
}

//nolint:gochecknoglobals // immutable lookup table
var roleAliases = map[string]Role{
	"CLIENTE":    Customer,
	"FINANCEIRO": Finance,
	"LOGISTICA":  Logistics,
	"POS_VENDA":  PostSale,
}

// allowedTargets is the role-permission table. Admin is absent because it
// is allowed the full enumeration.
//
//nolint:gochecknoglobals // immutable lookup table
var allowedTargets = map[Role][]order.Status{
	Finance:   {order.PaymentApproved, order.PaymentRejected, order.InvoiceIssued},
	Logistics: {order.InPreparation, order.Shipped},
	Customer:  {order.Received, order.ReturnRequested},
	PostSale:  {order.Returning, order.Returned, order.ReturnCanceled},
}

// ParseRole converts a stored or transmitted role string into a Role.
// Matching is case-insensitive and accepts the legacy Portuguese codes.
// Unrecognised strings yield RoleUnknown rather than an error.
func ParseRole(code string) Role {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for r, c := range roleCodes {
		if c == normalized {
			return r
		}
	}
	if r, ok := roleAliases[normalized]; ok {
		return r
	}
	return RoleUnknown
}

// AllowedTargets returns the statuses a role may request. The result is a
// fresh slice; an unknown role gets an empty one.
func AllowedTargets(role Role) []order.Status {
	if role == Admin {
		return order.AllStatuses()
	}
	targets := allowedTargets[role]
	out := make([]order.Status, len(targets))
	copy(out, targets)
	return out
}

// CanRequest reports whether target is in the role's allowed set.
func (r Role) CanRequest(target order.Status) bool {
	if r == Admin {
		return target.Validate() == nil
	}
	for _, s := range allowedTargets[r] {
		if s == target {
			return true
		}
	}
	return false
}

// IsKnown reports whether r is one of the five recognised roles.
func (r Role) IsKnown() bool {
	_, ok := roleCodes[r]
	return ok
}

func (r Role) String() string {
	if str, ok := roleCodes[r]; ok {
		return str
	}
	return "UNKNOWN"
}
