package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/rating"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// RateProductCommandHandler records a rating and recomputes the product's
// {average, count}.
//
// The product row is locked before the duplicate check, so two concurrent
// ratings of the same (order, product) serialize: the second sees the first
// and fails with Conflict. The unique index on (order_id, product_id) turns
// any remaining race into the same Conflict.
type RateProductCommandHandler struct {
	uowFactory RatingUoWFactory
	aggregator services.RatingAggregator
	logger     *slog.Logger
}

func NewRateProductCommandHandler(
	uowFactory RatingUoWFactory,
	aggregator services.RatingAggregator,
	logger *slog.Logger,
) RateProductCommandHandler {
	return RateProductCommandHandler{
		uowFactory: uowFactory,
		aggregator: aggregator,
		logger:     logger.With("component", "RateProductCommandHandler"),
	}
}

func (h RateProductCommandHandler) Handle(ctx context.Context, cmd RateProductCommand) (rating.Summary, error) {
	if err := cmd.Validate(); err != nil {
		return rating.Summary{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return rating.Summary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	a, err := resolveActor(ctx, uow.ActorRepository(), cmd.ActorID())
	if err != nil {
		return rating.Summary{}, err
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		o = nil
	case err != nil:
		return rating.Summary{}, err
	}
	if err = h.aggregator.AuthorizeOrder(a, o); err != nil {
		return rating.Summary{}, err
	}

	productRepo := uow.ProductRepository()
	p, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return rating.Summary{}, err
	}

	ratingRepo := uow.RatingRepository()
	duplicate, err := ratingRepo.Exists(ctx, o.ID(), p.ID())
	if err != nil {
		return rating.Summary{}, err
	}
	if duplicate {
		return rating.Summary{}, errs.NewConflictError("rating", "order "+o.ID().String()+", product "+p.ID().String())
	}

	r, err := h.aggregator.Rate(o, p, cmd.Value(), time.Now().UTC())
	if err != nil {
		return rating.Summary{}, err
	}
	if err = ratingRepo.Add(ctx, r); err != nil {
		return rating.Summary{}, err
	}

	values, err := ratingRepo.ValuesByProduct(ctx, p.ID())
	if err != nil {
		return rating.Summary{}, err
	}
	summary, err := h.aggregator.Recompute(p, values)
	if err != nil {
		return rating.Summary{}, err
	}
	if err = productRepo.UpdateRatingSummary(ctx, p); err != nil {
		return rating.Summary{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return rating.Summary{}, err
	}

	h.logger.InfoContext(ctx, "product rated",
		"product_id", p.ID().String(),
		"order_id", o.ID().String(),
		"value", r.Value(),
		"average", summary.Average,
		"count", summary.Count,
	)

	return summary, nil
}
