package commands

import (
	"context"

	"storefront/internal/pkg/errs"
)

// RemoveCartItemCommandHandler deletes a cart item owned by the caller.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a remove-from-cart handler.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-from-cart command.
// Returns ObjectNotFoundError for an unknown item and ForbiddenError when the
// item belongs to another user.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	item, err := cartRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if !item.BelongsTo(cmd.UserID()) {
		return errs.NewForbiddenError("remove cart item")
	}

	if err = cartRepo.Remove(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
