package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies an administrator's status transition.
//
// The order row is locked for the duration of the transaction so that the
// transition check and the write see the same current status; a concurrent
// transition on the same order waits and then validates against the new status.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrStatusTransitionIsInvalid):
//	    return respondUnprocessable(err)
//	case err != nil:
//	    return err
//	}
//	fmt.Printf("Order %s is now %s", updated.ID(), updated.Status())
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a status change handler.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns ForbiddenError for non-administrators, ObjectNotFoundError for an
// unknown order and StatusTransitionIsInvalidError when the lifecycle forbids the move.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Actor().IsAdmin() {
		return nil, errs.NewForbiddenError("change order status")
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, at time.Time) error {
		return o.ChangeStatus(cmd.Status(), at)
	})
}
