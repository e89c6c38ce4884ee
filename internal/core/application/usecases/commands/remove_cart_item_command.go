package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a user deleting an item from their cart.
type RemoveCartItemCommand struct {
	userID kernel.UUID
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a remove-from-cart command.
func NewRemoveCartItemCommand(userID, itemID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := errors.Join(userID.Validate(), itemID.Validate()); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{
		userID: userID,
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RemoveCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
