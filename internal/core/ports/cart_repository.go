package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract of the cart store.
type CartRepository interface {
	// Add persists a new cart item.
	Add(ctx context.Context, item *cart.Item) error

	// Get retrieves a cart item by id. Returns ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.UUID) (*cart.Item, error)

	// Update persists a quantity change. Returns ObjectNotFoundError if the item
	// no longer exists, e.g. because it was converted into an order meanwhile.
	Update(ctx context.Context, item *cart.Item) error

	// Remove deletes a cart item. Returns ObjectNotFoundError if absent.
	Remove(ctx context.Context, id kernel.UUID) error

	// LockUserCart serializes cart conversions of one user: it blocks until no
	// other transaction holds the lock and keeps it until the enclosing
	// transaction ends. Different users never contend.
	LockUserCart(ctx context.Context, userID kernel.UUID) error

	// ListByUserForUpdate retrieves all items of the user's cart, oldest first,
	// and locks them until the enclosing transaction ends.
	ListByUserForUpdate(ctx context.Context, userID kernel.UUID) ([]*cart.Item, error)

	// RemoveItems deletes the given items if they still belong to the user and
	// returns how many rows were deleted.
	RemoveItems(ctx context.Context, userID kernel.UUID, ids []kernel.UUID) (int64, error)
}
