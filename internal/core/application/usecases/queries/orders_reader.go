package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderFilter narrows an order listing. Zero values mean "no restriction".
type orderFilter struct {
	userID *kernel.UUID
	status *order.Status
	page   Page
}

// listOrders returns one page of orders, most recent first. Ties on
// created_at are broken by id so that pages never overlap.
func listOrders(ctx context.Context, db *gorm.DB, filter orderFilter) ([]OrderResponse, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.userID != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, filter.userID.Bytes())
	}
	if filter.status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.status.String())
	}

	query := `
		SELECT
			id,
			user_id,
			net_amount,
			address,
			status,
			created_at,
			status_changed_at
		FROM orders`
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`
	args = append(args, filter.page.Limit(), filter.page.Skip())

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, PageSize)
	for rows.Next() {
		resp, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (OrderResponse, error) {
	var (
		id, userID      uuid.UUID
		netAmount       decimal.Decimal
		address         sql.NullString
		status          string
		createdAt       time.Time
		statusChangedAt time.Time
	)

	if err := row.Scan(&id, &userID, &netAmount, &address, &status, &createdAt, &statusChangedAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromGoogle(userID)
	if err != nil {
		return OrderResponse{}, err
	}
	amount, err := kernel.NewMoney(netAmount)
	if err != nil {
		return OrderResponse{}, err
	}
	parsedStatus, err := order.ParseStatus(status)
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:              orderID,
		UserID:          ownerID,
		NetAmount:       amount,
		Status:          parsedStatus,
		CreatedAt:       createdAt,
		StatusChangedAt: statusChangedAt,
	}
	if address.Valid {
		resp.Address = &address.String
	}
	return resp, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
