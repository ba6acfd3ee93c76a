package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// AddCartItemCommandHandler creates a cart item for an existing product.
// The returned id is what CreateOrderCommand takes as a line item id.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	logger     *slog.Logger
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, logger *slog.Logger) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "AddCartItemCommandHandler"),
	}
}

func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	a, err := resolveActor(ctx, uow.ActorRepository(), cmd.ActorID())
	if err != nil {
		return kernel.UUID{}, err
	}

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return kernel.UUID{}, err
	}

	item, err := cart.NewItem(kernel.NewUUID(), a.ID(), p.ID(), cmd.Quantity())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.CartRepository().Add(ctx, item); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.logger.DebugContext(ctx, "cart item added",
		"cart_item_id", item.ID().String(),
		"product_id", p.ID().String(),
		"quantity", item.Quantity(),
	)

	return item.ID(), nil
}
