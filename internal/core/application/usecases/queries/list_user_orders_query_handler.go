package queries

import (
	"context"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListUserOrdersQueryHandler retrieves one user's orders for administrators.
type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

// Handle returns one page of the user's orders, most recent first.
// Returns ForbiddenError for non-administrators.
func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().IsAdmin() {
		return nil, errs.NewForbiddenError("list user orders")
	}

	userID := query.UserID()
	return listOrders(ctx, h.db, orderFilter{
		userID: &userID,
		status: query.Status(),
		page:   query.Page(),
	})
}
