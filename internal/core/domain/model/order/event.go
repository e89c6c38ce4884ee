package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is an audit record stating that an order entered a status at a point in time.
// Events are append-only.
type Event struct {
	id         kernel.UUID
	orderID    kernel.UUID
	userID     kernel.UUID
	status     Status
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates an audit event. userID is the order owner, carried so that
// downstream consumers of published events can route without a lookup.
func NewEvent(id, orderID, userID kernel.UUID, status Status, occurredAt time.Time) (Event, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		userID.Validate(),
		status.Validate(),
	); err != nil {
		return Event{}, err
	}
	if occurredAt.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return Event{
		id:         id,
		orderID:    orderID,
		userID:     userID,
		status:     status,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

func (e Event) ID() kernel.UUID {
	return e.id
}

func (e Event) OrderID() kernel.UUID {
	return e.orderID
}

func (e Event) UserID() kernel.UUID {
	return e.userID
}

func (e Event) Status() Status {
	return e.status
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}
