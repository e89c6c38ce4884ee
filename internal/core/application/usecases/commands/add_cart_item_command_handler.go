package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// AddCartItemCommandHandler adds a product to the user's cart after checking
// that the product exists in the catalog.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates an add-to-cart handler.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command.
// Returns ObjectNotFoundError when the product is not in the catalog.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.Catalog().GetProduct(ctx, cmd.ProductID()); err != nil {
		return nil, err
	}

	item, err := cart.NewItem(kernel.NewUUID(), cmd.UserID(), cmd.ProductID(), cmd.Quantity(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
