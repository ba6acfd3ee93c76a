package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

const maxRelayBatch = 1000

type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batch int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batch int) (RelayOutboxCommand, error) {
	if batch < 1 || batch > maxRelayBatch {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batch", batch, 1, maxRelayBatch)
	}

	return RelayOutboxCommand{
		batch: batch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) Batch() int {
	return c.batch
}
