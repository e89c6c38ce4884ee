package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// Product is the catalog collaborator's view of a product relevant to ordering.
type Product struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}

// Catalog is the read-only product catalog accessor.
type Catalog interface {
	// GetProduct returns the product with its current price.
	// Returns ObjectNotFoundError if the product does not exist.
	GetProduct(ctx context.Context, id kernel.UUID) (Product, error)

	// GetProducts returns the existing products among ids, keyed by id.
	// Missing ids are simply absent from the result.
	GetProducts(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]Product, error)
}
