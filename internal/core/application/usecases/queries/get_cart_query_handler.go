package queries

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler lists cart items joined with the catalog, oldest first.
type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the caller's cart. Prices are the catalog's current prices.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) ([]CartItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.product_id,
			c.quantity,
			c.created_at,
			p.name,
			p.price
		FROM cart_items c
		LEFT JOIN products p ON p.id = c.product_id
		WHERE c.user_id = ?
		ORDER BY c.created_at, c.id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CartItemResponse, 0)
	for rows.Next() {
		var (
			id, productID uuid.UUID
			quantity      int
			createdAt     time.Time
			name          sql.NullString
			price         decimal.NullDecimal
		)
		if err = rows.Scan(&id, &productID, &quantity, &createdAt, &name, &price); err != nil {
			return nil, err
		}

		item := CartItemResponse{Quantity: quantity, CreatedAt: createdAt}
		if item.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromGoogle(productID); err != nil {
			return nil, err
		}
		if name.Valid && price.Valid {
			money, moneyErr := kernel.NewMoney(price.Decimal)
			if moneyErr != nil {
				return nil, moneyErr
			}
			item.Product = &CartProductResponse{Name: name.String, Price: money}
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
