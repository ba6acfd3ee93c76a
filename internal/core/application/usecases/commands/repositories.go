// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	PaymentVaultFactory interface {
		PaymentVault() ports.PaymentVault
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CartUoW is used to put products in a cart.
	CartUoW interface {
		TxManager
		ActorRepoFactory
		ProductRepoFactory
		CartRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW turns cart items into an order, vaulting the card if any.
	CheckoutUoW interface {
		TxManager
		ActorRepoFactory
		CartRepoFactory
		ProductRepoFactory
		OrderRepoFactory
		PaymentVaultFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// TransitionUoW changes an order status and records the event.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... apply the transition
	//   err = uow.OutboxRepository().Add(ctx, msg)
	//
	//   err = uow.Commit(ctx)
	TransitionUoW interface {
		TxManager
		ActorRepoFactory
		OrderRepoFactory
		OutboxRepoFactory
	}

	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// ReturnUoW records return requests.
	ReturnUoW interface {
		TxManager
		ActorRepoFactory
		OrderRepoFactory
		CartRepoFactory
		ReturnRepoFactory
	}

	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// RatingUoW records ratings and updates the product summary.
	RatingUoW interface {
		TxManager
		ActorRepoFactory
		OrderRepoFactory
		ProductRepoFactory
		RatingRepoFactory
	}

	RatingUoWFactory interface {
		Create() RatingUoW
	}

	// RelayUoW drains the outbox.
	RelayUoW interface {
		TxManager
		OutboxRepoFactory
	}

	RelayUoWFactory interface {
		Create() RelayUoW
	}
)
