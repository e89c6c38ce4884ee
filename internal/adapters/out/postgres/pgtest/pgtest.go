// Package pgtest starts a disposable Postgres for integration tests and
// prepares the storefront schema together with the collaborator tables the
// core reads from.
package pgtest

import (
	"context"
	"time"

	postgres_adapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/addressrepo"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Start runs a Postgres container, connects to it and migrates every table.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return container, nil, err
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}
	if err = db.AutoMigrate(&catalogrepo.ProductDTO{}, &addressrepo.AddressDTO{}, &addressrepo.UserDTO{}); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties all tables.
func Truncate(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE
		order_events, order_products, orders, cart_items, outbox_messages,
		products, users, addresses CASCADE`).Error
}

// SeedProduct inserts a catalog product and returns its id.
func SeedProduct(db *gorm.DB, name, price string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	money, err := kernel.MoneyFromString(price)
	if err != nil {
		return kernel.UUID{}, err
	}

	dto := catalogrepo.ProductDTO{ID: id.Bytes(), Name: name, Price: money.Decimal()}
	if err = db.Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}
	return id, nil
}

// SeedUser inserts a user, optionally with a default shipping address.
func SeedUser(db *gorm.DB, userID kernel.UUID, shipping *address.Address) error {
	user := addressrepo.UserDTO{ID: userID.Bytes()}
	if shipping != nil {
		addressID := uuid.New()
		dto := addressrepo.AddressDTO{
			ID:      addressID,
			UserID:  userID.Bytes(),
			LineOne: shipping.LineOne,
			LineTwo: shipping.LineTwo,
			City:    shipping.City,
			Country: shipping.Country,
			Pincode: shipping.Pincode,
		}
		if err := db.Create(&dto).Error; err != nil {
			return err
		}
		user.DefaultShippingAddressID = &addressID
	}
	return db.Create(&user).Error
}
