package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
)

// ChangeCartItemQuantityCommandHandler sets the quantity of a cart item owned by the caller.
// If a checkout converts the item concurrently, the update finds no row and
// reports ObjectNotFoundError.
type ChangeCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeCartItemQuantityCommandHandler creates a set-quantity handler.
func NewChangeCartItemQuantityCommandHandler(uowFactory CartUoWFactory) ChangeCartItemQuantityCommandHandler {
	return ChangeCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set-quantity command.
func (h ChangeCartItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeCartItemQuantityCommand,
) (*cart.Item, error) {
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

	cartRepo := uow.CartRepository()
	item, err := cartRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}
	if !item.BelongsTo(cmd.UserID()) {
		return nil, errs.NewForbiddenError("change cart item quantity")
	}

	if err = item.ChangeQuantity(cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = cartRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
