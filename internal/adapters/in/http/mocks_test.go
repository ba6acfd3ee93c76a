package http_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/rating"

	"github.com/stretchr/testify/mock"
)

type MockAddCartItemHandler struct{ mock.Mock }

func (m *MockAddCartItemHandler) Handle(ctx context.Context, cmd commands.AddCartItemCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(
	ctx context.Context,
	cmd commands.CreateOrderCommand,
) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockTransitionOrderStatusHandler struct{ mock.Mock }

func (m *MockTransitionOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.TransitionOrderStatusCommand,
) (commands.TransitionOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.TransitionOrderStatusResult), args.Error(1)
}

type MockRequestReturnHandler struct{ mock.Mock }

func (m *MockRequestReturnHandler) Handle(ctx context.Context, cmd commands.RequestReturnCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockRateProductHandler struct{ mock.Mock }

func (m *MockRateProductHandler) Handle(ctx context.Context, cmd commands.RateProductCommand) (rating.Summary, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(rating.Summary), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(
	ctx context.Context,
	query queries.GetOrderQuery,
) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockGetProductRatingHandler struct{ mock.Mock }

func (m *MockGetProductRatingHandler) Handle(
	ctx context.Context,
	query queries.GetProductRatingQuery,
) (queries.GetProductRatingQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetProductRatingQueryResponse), args.Error(1)
}
