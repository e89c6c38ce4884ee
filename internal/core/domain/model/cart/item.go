package cart

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of a user's cart. The same product may appear on several items.
type Item struct {
	id        kernel.UUID
	userID    kernel.UUID
	productID kernel.UUID
	quantity  int
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewItem validates and creates a cart item. Quantity must be positive.
func NewItem(id, userID, productID kernel.UUID, quantity int, createdAt time.Time) (*Item, error) {
	item := &Item{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		productID.Validate(),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	item.id = id
	item.userID = userID
	item.productID = productID
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) UserID() kernel.UUID {
	return i.userID
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// BelongsTo reports whether the item is in userID's cart.
func (i *Item) BelongsTo(userID kernel.UUID) bool {
	return i.userID.IsEqual(userID)
}

// ChangeQuantity sets a new positive quantity.
func (i *Item) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
