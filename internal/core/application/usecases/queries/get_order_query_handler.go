package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves an order together with its lines and event history.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(actor, orderID)
//
//	details, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return respondNotFound()
//	}
//	for _, event := range details.Events {
//	    fmt.Printf("%s %s\n", event.CreatedAt.Format(time.RFC3339), event.Status)
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order's details.
// An order that does not exist, or that the caller may not see, is reported
// as ObjectNotFoundError in both cases.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	db := h.db.WithContext(ctx)
	notFound := errs.NewObjectNotFoundError("order", query.OrderID().String())

	row := db.Raw(`
		SELECT
			id,
			user_id,
			net_amount,
			address,
			status,
			created_at,
			status_changed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	header, err := scanOrder(row)
	if isNoRows(err) {
		return OrderDetailsResponse{}, notFound
	}
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() && !actor.Owns(header.UserID) {
		return OrderDetailsResponse{}, notFound
	}

	lines, err := h.lines(ctx, header.ID)
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	events, err := h.events(ctx, header.ID)
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	return OrderDetailsResponse{
		OrderResponse: header,
		Lines:         lines,
		Events:        events,
	}, nil
}

func (h GetOrderQueryHandler) lines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price
		FROM order_products
		WHERE order_id = ?
		ORDER BY position, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var (
			id, productID uuid.UUID
			quantity      int
			unitPrice     decimal.Decimal
		)
		if err = rows.Scan(&id, &productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		line := OrderLineResponse{Quantity: quantity}
		if line.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if line.ProductID, err = kernel.UUIDFromGoogle(productID); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (h GetOrderQueryHandler) events(ctx context.Context, orderID kernel.UUID) ([]OrderEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			created_at
		FROM order_events
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OrderEventResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			status    string
			createdAt time.Time
		)
		if err = rows.Scan(&id, &status, &createdAt); err != nil {
			return nil, err
		}

		event := OrderEventResponse{CreatedAt: createdAt}
		if event.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if event.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
