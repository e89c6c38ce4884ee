package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrChangeCartItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeCartItemQuantityCommand must be created via NewChangeCartItemQuantityCommand constructor",
)

// ChangeCartItemQuantityCommand represents a user setting the quantity of a cart item.
type ChangeCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewChangeCartItemQuantityCommand creates a set-quantity command. Quantity must be positive.
func NewChangeCartItemQuantityCommand(
	userID, itemID kernel.UUID,
	quantity int,
) (ChangeCartItemQuantityCommand, error) {
	cmd := ChangeCartItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userID.Validate(),
		itemID.Validate(),
		cmd.setQuantity(quantity),
	); err != nil {
		return ChangeCartItemQuantityCommand{}, err
	}

	cmd.userID = userID
	cmd.itemID = itemID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartItemQuantityCommandIsNotConstructed)
}

func (c ChangeCartItemQuantityCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ChangeCartItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c ChangeCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *ChangeCartItemQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
