package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// resolveActor loads the caller. An id the resolver does not know is treated
// as a caller without permissions, not as a missing resource.
func resolveActor(ctx context.Context, repo ports.ActorRepository, id kernel.UUID) (*actor.Actor, error) {
	a, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewPermissionDeniedErrorWithCause("unknown actor", err)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
