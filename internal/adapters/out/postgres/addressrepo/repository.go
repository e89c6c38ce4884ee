package addressrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAddressBook implements the AddressBook port.
type GormAddressBook struct {
	db *gorm.DB
}

func NewGormAddressBook(db *gorm.DB) *GormAddressBook {
	return &GormAddressBook{db: db}
}

// GetDefaultAddress returns the address the user's record points at, or nil
// when the user is unknown or has no default address.
func (b *GormAddressBook) GetDefaultAddress(ctx context.Context, userID kernel.UUID) (*address.Address, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	err := b.db.WithContext(ctx).
		Select("addresses.*").
		Joins("JOIN users ON users.default_shipping_address_id = addresses.id").
		Where("users.id = ?", userID.Bytes()).
		Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto), nil
}
