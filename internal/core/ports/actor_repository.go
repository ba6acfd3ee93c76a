package ports

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
)

// ActorRepository resolves an authenticated actor id to its current role.
// Credentials and sessions live in the authentication service, not here.
type ActorRepository interface {
	// Get returns errs.ObjectNotFoundError for unknown actors.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)

	// Save creates or updates the actor's role.
	Save(ctx context.Context, a *actor.Actor) error
}
