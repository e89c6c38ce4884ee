package services

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// OrderCheckout converts cart items into an order.
//
// Business rules:
//   - Every item must belong to the ordering user
//   - Every item's product must have a current price; the price is copied onto the line
//   - The net amount is the exact decimal sum of quantity × unit price
//   - The shipping address is snapshotted with address.FormatAddress; a user
//     without an address gets an order with no address
//
// Example usage:
//
//	o, err := services.NewOrderCheckout().Checkout(
//	    kernel.NewUUID(), userID, items, prices, shipping, time.Now().UTC(),
//	)
//	if err != nil {
//	    return err
//	}
type OrderCheckout struct{}

func NewOrderCheckout() OrderCheckout {
	return OrderCheckout{}
}

// Checkout builds a Pending order with one line per cart item.
//
// Parameters:
//   - orderID: identifier for the new order
//   - userID: the ordering user
//   - items: the user's cart items, at least one
//   - prices: current unit price per product id
//   - shipping: the user's default address, nil when none is on file
//   - at: placement time
//
// Returns:
//   - *order.Order: the new order with its initial Pending event
//   - error: ForbiddenError for a foreign item, ObjectNotFoundError for an
//     unpriced product, or the order's validation error (e.g. no lines)
func (OrderCheckout) Checkout(
	orderID, userID kernel.UUID,
	items []*cart.Item,
	prices map[kernel.UUID]kernel.Money,
	shipping *address.Address,
	at time.Time,
) (*order.Order, error) {
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !item.BelongsTo(userID) {
			return nil, errs.NewForbiddenErrorWithCause(
				"checkout cart item",
				fmt.Errorf("item %s belongs to another user", item.ID()),
			)
		}

		price, ok := prices[item.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", item.ProductID().String())
		}

		line, err := order.NewLine(kernel.NewUUID(), item.ProductID(), item.Quantity(), price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	var snapshot *string
	if shipping != nil {
		formatted := address.FormatAddress(*shipping)
		snapshot = &formatted
	}

	return order.NewOrder(orderID, userID, lines, snapshot, at)
}
