package commands

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// PlaceOrderResult is the outcome of a checkout: either the new order or the
// notice that the cart had nothing to order.
type PlaceOrderResult struct {
	order *order.Order
}

// NewPlacedOrderResult is the outcome of a checkout that created placed.
func NewPlacedOrderResult(placed *order.Order) PlaceOrderResult {
	return PlaceOrderResult{order: placed}
}

// CartIsEmpty reports that no order was created because the cart was empty.
func (r PlaceOrderResult) CartIsEmpty() bool {
	return r.order == nil
}

// Order returns the created order, nil when the cart was empty.
func (r PlaceOrderResult) Order() *order.Order {
	return r.order
}

// PlaceOrderCommandHandler converts a user's cart into an order.
//
// The whole conversion runs in one transaction: the user's cart is locked,
// its items are read, priced from the catalog and turned into order lines,
// the default address is snapshotted, the order with its Pending event is
// written and exactly the consumed cart items are deleted. Concurrent
// checkouts of the same user are serialized by the cart lock, so at most one
// of them sees a non-empty cart.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(userID)
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case err != nil:
//	    return err
//	case result.CartIsEmpty():
//	    return respondCartIsEmpty()
//	default:
//	    return respondCreated(result.Order())
//	}
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	checkout   services.OrderCheckout
}

// NewPlaceOrderCommandHandler creates a checkout handler.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		checkout:   services.NewOrderCheckout(),
	}
}

// Handle processes the checkout command.
// Returns an empty-cart result without touching any data when the cart has no items.
// Returns ConflictError when the cart changed underneath the conversion.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	if err := cartRepo.LockUserCart(ctx, cmd.UserID()); err != nil {
		return PlaceOrderResult{}, err
	}

	items, err := cartRepo.ListByUserForUpdate(ctx, cmd.UserID())
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if len(items) == 0 {
		return PlaceOrderResult{}, nil
	}

	itemIDs := make([]kernel.UUID, 0, len(items))
	productIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID())
		productIDs = append(productIDs, item.ProductID())
	}

	products, err := uow.Catalog().GetProducts(ctx, productIDs)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	prices := make(map[kernel.UUID]kernel.Money, len(products))
	for id, product := range products {
		prices[id] = product.Price
	}

	shipping, err := uow.AddressBook().GetDefaultAddress(ctx, cmd.UserID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	placed, err := h.checkout.Checkout(kernel.NewUUID(), cmd.UserID(), items, prices, shipping, time.Now().UTC())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return PlaceOrderResult{}, err
	}

	removed, err := cartRepo.RemoveItems(ctx, cmd.UserID(), itemIDs)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if removed != int64(len(itemIDs)) {
		return PlaceOrderResult{}, errs.NewConflictErrorWithCause(
			"cart",
			fmt.Errorf("expected to remove %d items, removed %d", len(itemIDs), removed),
		)
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return NewPlacedOrderResult(placed), nil
}
