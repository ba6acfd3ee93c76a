package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// RequestReturnCommandHandler records a return request.
//
// Checks, first failure wins:
//   - order exists (NotFound)
//   - customers own the order and it is in SOLICITACAO_DEVOLUCAO
//   - the line item exists and belongs to the order
//   - there is no return for (order, line item) yet (Conflict)
//
// The order row is locked for the duration; the unique index on
// (order_id, line_item_id) backs the duplicate check. The order status is
// not changed.
type RequestReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	policy     services.ReturnPolicy
	logger     *slog.Logger
}

func NewRequestReturnCommandHandler(
	uowFactory ReturnUoWFactory,
	policy services.ReturnPolicy,
	logger *slog.Logger,
) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		logger:     logger.With("component", "RequestReturnCommandHandler"),
	}
}

// Handle returns the id of the new Return.
func (h RequestReturnCommandHandler) Handle(ctx context.Context, cmd RequestReturnCommand) (kernel.UUID, error) {
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

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.policy.AuthorizeOrder(a, o); err != nil {
		return kernel.UUID{}, err
	}

	existsElsewhere := false
	if _, onOrder := o.LineItem(cmd.LineItemID()); !onOrder {
		existsElsewhere, err = uow.CartRepository().Exists(ctx, cmd.LineItemID())
		if err != nil {
			return kernel.UUID{}, err
		}
	}
	item, err := h.policy.ResolveLineItem(o, cmd.LineItemID(), existsElsewhere)
	if err != nil {
		return kernel.UUID{}, err
	}

	returnRepo := uow.ReturnRepository()
	duplicate, err := returnRepo.Exists(ctx, o.ID(), item.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if duplicate {
		return kernel.UUID{}, errs.NewConflictError("return", "order "+o.ID().String()+", line item "+item.ID().String())
	}

	ret, err := h.policy.Open(o, item, cmd.Reason(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = returnRepo.Add(ctx, ret); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "return requested",
		"return_id", ret.ID().String(),
		"order_id", o.ID().String(),
		"line_item_id", item.ID().String(),
		"actor_id", a.ID().String(),
	)

	return ret.ID(), nil
}
