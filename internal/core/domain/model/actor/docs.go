// Package actor models the caller of a storefront operation and the static
// role-permission table.
//
// Every request is made by an Actor with exactly one Role. The role gates
// which target statuses the actor may ask an order to move to; whether the
// move is legal from the order's current status is decided elsewhere.
package actor
