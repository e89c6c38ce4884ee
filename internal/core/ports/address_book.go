package ports

import (
	"context"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
)

// AddressBook is the read-only address accessor.
type AddressBook interface {
	// GetDefaultAddress returns the user's default shipping address, or nil
	// without error when the user has none.
	GetDefaultAddress(ctx context.Context, userID kernel.UUID) (*address.Address, error)
}
