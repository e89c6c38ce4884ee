// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// PageSize is the fixed number of orders returned per listing page.
const PageSize = 5

// Page is a validated offset into a most-recent-first listing.
type Page struct {
	skip int
}

// NewPage validates skip, the number of orders to pass over. Negative values are rejected.
func NewPage(skip int) (Page, error) {
	if skip < 0 {
		return Page{}, errs.NewValueIsInvalidErrorWithCause("skip", fmt.Errorf("%d is negative", skip))
	}
	return Page{skip: skip}, nil
}

func (p Page) Skip() int {
	return p.skip
}

func (p Page) Limit() int {
	return PageSize
}

// OrderResponse is the order header as shown in listings.
type OrderResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	NetAmount       kernel.Money
	Address         *string
	Status          order.Status
	CreatedAt       time.Time
	StatusChangedAt time.Time
}

// OrderLineResponse is one ordered product with the price it was bought at.
type OrderLineResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
}

// OrderEventResponse is one entry of an order's status history.
type OrderEventResponse struct {
	ID        kernel.UUID
	Status    order.Status
	CreatedAt time.Time
}

// OrderDetailsResponse is a single order with its lines and complete status history.
type OrderDetailsResponse struct {
	OrderResponse
	Lines  []OrderLineResponse
	Events []OrderEventResponse
}

// CartProductResponse is the current catalog data of a product in the cart.
type CartProductResponse struct {
	Name  string
	Price kernel.Money
}

// CartItemResponse is one cart line. Product is nil when the product has
// left the catalog since it was added.
type CartItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	CreatedAt time.Time
	Product   *CartProductResponse
}
