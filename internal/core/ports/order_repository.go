// Package ports defines the contracts between the storefront core and its
// infrastructure: repositories bound to a unit of work, read-only accessors for
// the catalog and address collaborators, and the outbound message publisher.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its lines and pending events.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order together with its pending events.
	// Returns ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetForUpdate retrieves the order header and locks its row until the
	// enclosing transaction ends, so that the status read and the status write
	// of a transition cannot interleave with another transition.
	// Lines are not loaded. Returns ObjectNotFoundError if the order does not exist.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
