// Package addressrepo reads users' default shipping addresses from the
// address collaborator's tables.
package addressrepo

import (
	"storefront/internal/core/domain/model/address"

	"github.com/google/uuid"
)

// AddressDTO is a stored shipping address.
type AddressDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LineOne string    `gorm:"type:varchar(255);not null"`
	LineTwo string    `gorm:"type:varchar(255)"`
	City    string    `gorm:"type:varchar(128);not null"`
	Country string    `gorm:"type:varchar(128);not null"`
	Pincode string    `gorm:"type:varchar(32);not null"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

// UserDTO is the part of the user record that points at the default address.
type UserDTO struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DefaultShippingAddressID *uuid.UUID `gorm:"type:uuid"`
}

func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto AddressDTO) *address.Address {
	return &address.Address{
		LineOne: dto.LineOne,
		LineTwo: dto.LineTwo,
		City:    dto.City,
		Country: dto.Country,
		Pincode: dto.Pincode,
	}
}
