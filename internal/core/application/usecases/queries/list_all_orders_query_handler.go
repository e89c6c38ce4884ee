package queries

import (
	"context"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListAllOrdersQueryHandler retrieves orders of all users for administrators.
type ListAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListAllOrdersQueryHandler creates a handler for the administrative order listing.
func NewListAllOrdersQueryHandler(db *gorm.DB) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{db: db}
}

// Handle returns one page of orders, most recent first.
// Returns ForbiddenError for non-administrators.
func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().IsAdmin() {
		return nil, errs.NewForbiddenError("list all orders")
	}

	return listOrders(ctx, h.db, orderFilter{
		status: query.Status(),
		page:   query.Page(),
	})
}
