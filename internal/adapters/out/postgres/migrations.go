package postgres

import (
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables owned by the order-management core.
// The catalog and address tables belong to their collaborators and are not touched.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderProductDTO{},
		&orderrepo.OrderEventDTO{},
		&cartrepo.CartItemDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
