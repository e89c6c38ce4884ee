package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListMyOrdersQueryHandler retrieves the caller's orders, most recent first.
type ListMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListMyOrdersQueryHandler creates a handler for the caller's order listing.
// Requires a GORM database connection for query execution.
func NewListMyOrdersQueryHandler(db *gorm.DB) ListMyOrdersQueryHandler {
	return ListMyOrdersQueryHandler{db: db}
}

// Handle returns one page of the caller's orders.
func (h ListMyOrdersQueryHandler) Handle(ctx context.Context, query ListMyOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	userID := query.Actor().UserID()
	return listOrders(ctx, h.db, orderFilter{
		userID: &userID,
		page:   query.Page(),
	})
}
