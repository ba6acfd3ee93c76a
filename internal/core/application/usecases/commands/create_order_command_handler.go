package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ErrNoResolvableLineItems is the cause reported when none of the requested
// cart items can be ordered by the actor.
var ErrNoResolvableLineItems = errors.New("none of the line items can be ordered")

// CreateOrderResult is what the caller gets back after placing an order.
type CreateOrderResult struct {
	OrderID kernel.UUID
	Total   kernel.Money
}

// CreateOrderCommandHandler is the only path that creates orders.
//
// Workflow, in one transaction:
//   - resolve the actor
//   - lock the requested cart items that the actor owns and that are not
//     attached yet; the rest are skipped
//   - capture each product's current price into a line item
//   - vault the card for CREDIT_CARD orders
//   - store the order in EM_PROCESSAMENTO and attach the cart items to it
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	a, err := resolveActor(ctx, uow.ActorRepository(), cmd.ActorID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	cartRepo := uow.CartRepository()
	items, err := cartRepo.GetAttachable(ctx, a.ID(), cmd.LineItemIDs())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if len(items) == 0 {
		return CreateOrderResult{}, errs.NewValueIsRequiredErrorWithCause("line items", ErrNoResolvableLineItems)
	}

	lineItems, err := h.priceLineItems(ctx, uow, items)
	if err != nil {
		return CreateOrderResult{}, err
	}

	var instrumentID *kernel.UUID
	if card := cmd.Card(); card != nil {
		if card.IsExpired(time.Now()) {
			return CreateOrderResult{}, errs.NewValueIsInvalidError("card expiry")
		}
		id, err := uow.PaymentVault().Vault(ctx, a.ID(), *card)
		if err != nil {
			return CreateOrderResult{}, err
		}
		instrumentID = &id
	}

	o, err := order.NewOrder(kernel.NewUUID(), a.ID(), lineItems, cmd.PaymentMethod(), instrumentID, time.Now().UTC())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	for _, item := range items {
		if err = item.AttachTo(o.ID()); err != nil {
			return CreateOrderResult{}, err
		}
	}
	if err = cartRepo.Attach(ctx, items); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(),
		"owner_id", a.ID().String(),
		"line_items", len(lineItems),
		"total", o.Total().String(),
		"payment_method", o.PaymentMethod().String(),
	)

	return CreateOrderResult{OrderID: o.ID(), Total: o.Total()}, nil
}

func (h CreateOrderCommandHandler) priceLineItems(
	ctx context.Context,
	uow CheckoutUoW,
	items []*cart.Item,
) ([]*order.LineItem, error) {
	productRepo := uow.ProductRepository()
	lineItems := make([]*order.LineItem, 0, len(items))

	for _, item := range items {
		p, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			return nil, err
		}
		lineItem, err := order.NewLineItem(item.ID(), p.ID(), p.Price(), item.Quantity())
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}
