package actor

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated caller of an operation. Authentication itself
// happens outside this module; an Actor only carries the resolved identity
// and role.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates an Actor. Any role is accepted, including RoleUnknown,
// which simply may not do anything.
func NewActor(id kernel.UUID, role Role) (*Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Actor{id: id, role: role, isConstructed: true}, nil
}

func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

func (a *Actor) ID() kernel.UUID {
	return a.id
}

func (a *Actor) Role() Role {
	return a.role
}

// Owns reports whether the actor is the owner identified by ownerID.
func (a *Actor) Owns(ownerID kernel.UUID) bool {
	return a.id.IsEqual(ownerID)
}
