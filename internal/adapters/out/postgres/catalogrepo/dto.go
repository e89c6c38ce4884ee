// Package catalogrepo reads products from the catalog's table. The catalog is
// owned by another part of the storefront; this package never writes to it
// outside of tests.
package catalogrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the subset of the catalog's product row used for ordering.
type ProductDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the catalog's products table.
func (ProductDTO) TableName() string {
	return "products"
}

func toPort(dto ProductDTO) (ports.Product, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return ports.Product{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return ports.Product{}, err
	}
	return ports.Product{ID: id, Name: dto.Name, Price: price}, nil
}
