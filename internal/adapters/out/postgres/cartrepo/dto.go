// Package cartrepo persists cart items and provides the locking primitives
// used when a cart is converted into an order.
package cartrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO represents one cart line in the database.
type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_items_user_created,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null;check:chk_cart_items_quantity,quantity > 0"`
	CreatedAt time.Time `gorm:"not null;index:idx_cart_items_user_created,priority:2"`
}

// TableName specifies the database table name for cart items.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:        item.ID().Bytes(),
		UserID:    item.UserID().Bytes(),
		ProductID: item.ProductID().Bytes(),
		Quantity:  item.Quantity(),
		CreatedAt: item.CreatedAt(),
	}
}

func toDomain(dto CartItemDTO) (*cart.Item, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return nil, err
	}
	return cart.NewItem(id, userID, productID, dto.Quantity, dto.CreatedAt)
}

func idStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
