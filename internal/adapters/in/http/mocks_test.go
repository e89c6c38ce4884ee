package http

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.PlaceOrderResult), args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAddCartItemHandler struct{ mock.Mock }

func (m *MockAddCartItemHandler) Handle(ctx context.Context, cmd commands.AddCartItemCommand) (*cart.Item, error) {
	args := m.Called(ctx, cmd)
	item, _ := args.Get(0).(*cart.Item)
	return item, args.Error(1)
}

type MockChangeCartItemQuantityHandler struct{ mock.Mock }

func (m *MockChangeCartItemQuantityHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeCartItemQuantityCommand,
) (*cart.Item, error) {
	args := m.Called(ctx, cmd)
	item, _ := args.Get(0).(*cart.Item)
	return item, args.Error(1)
}

type MockRemoveCartItemHandler struct{ mock.Mock }

func (m *MockRemoveCartItemHandler) Handle(ctx context.Context, cmd commands.RemoveCartItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListMyOrdersHandler struct{ mock.Mock }

func (m *MockListMyOrdersHandler) Handle(ctx context.Context, query queries.ListMyOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.OrderResponse)
	return orders, args.Error(1)
}

type MockListAllOrdersHandler struct{ mock.Mock }

func (m *MockListAllOrdersHandler) Handle(ctx context.Context, query queries.ListAllOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.OrderResponse)
	return orders, args.Error(1)
}

type MockListUserOrdersHandler struct{ mock.Mock }

func (m *MockListUserOrdersHandler) Handle(ctx context.Context, query queries.ListUserOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.OrderResponse)
	return orders, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetailsResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderDetailsResponse), args.Error(1)
}

type MockGetCartHandler struct{ mock.Mock }

func (m *MockGetCartHandler) Handle(ctx context.Context, query queries.GetCartQuery) ([]queries.CartItemResponse, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]queries.CartItemResponse)
	return items, args.Error(1)
}
