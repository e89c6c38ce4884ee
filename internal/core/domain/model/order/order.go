package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when an order would be created from an empty cart.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order lines")
)

// Order is the aggregate root of a placed order.
//
// Order follows these invariants:
//   - Must have a valid identifier and owner
//   - Has at least one line
//   - netAmount equals the sum of line subtotals at placement time
//   - Only status and statusChangedAt change after creation
//   - Each status entered appends exactly one Event
//
// New events are kept as pending until the repository persists them and the
// unit of work forwards them to the outbox.
type Order struct {
	id              kernel.UUID
	userID          kernel.UUID
	netAmount       kernel.Money
	address         *string
	status          Status
	createdAt       time.Time
	statusChangedAt time.Time
	lines           []Line

	pendingEvents []Event

	isConstructed bool
}

// NewOrder creates a Pending order from priced lines and records the initial
// Pending event.
//
// Parameters:
//   - id: identifier of the new order
//   - userID: owner of the converted cart
//   - lines: one line per cart item, at least one
//   - address: formatted shipping address snapshot, nil when the owner has none
//   - createdAt: placement time, also the time of the Pending event
//
// Example:
//
//	line, _ := order.NewLine(kernel.NewUUID(), productID, 2, kernel.MustMoney("10.00"))
//	o, err := order.NewOrder(kernel.NewUUID(), userID, []order.Line{line}, &addr, time.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.NetAmount()) // 20.00
func NewOrder(id, userID kernel.UUID, lines []Line, address *string, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setLines(lines),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.address = copyAddress(address)
	o.statusChangedAt = createdAt
	o.netAmount = sumLines(lines)

	event, err := NewEvent(kernel.NewUUID(), o.id, o.userID, Pending, createdAt)
	if err != nil {
		return nil, err
	}
	o.pendingEvents = append(o.pendingEvents, event)

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. No events are recorded.
// lines may be nil when the caller only needs the order header (status changes).
func RestoreOrder(
	id, userID kernel.UUID,
	netAmount kernel.Money,
	address *string,
	status Status,
	createdAt, statusChangedAt time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		netAmount:       netAmount,
		address:         copyAddress(address),
		statusChangedAt: statusChangedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	o.status = status
	o.lines = slices.Clone(lines)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) NetAmount() kernel.Money {
	return o.netAmount
}

// Address returns the shipping address snapshot, nil when none was on file.
func (o *Order) Address() *string {
	return copyAddress(o.address)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) StatusChangedAt() time.Time {
	return o.statusChangedAt
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

// PendingEvents returns the events recorded since the order was created or restored.
func (o *Order) PendingEvents() []Event {
	return slices.Clone(o.pendingEvents)
}

// ClearPendingEvents drops recorded events once they have been handed to the outbox.
func (o *Order) ClearPendingEvents() {
	o.pendingEvents = nil
}

// ChangeStatus moves the order to next and records one Event.
//
// The event time is at, clamped to the previous status change so that the
// audit trail of one order never goes back in time.
//
// Returns:
//   - nil on success
//   - StatusTransitionIsInvalidError if next is not adjacent to the current status;
//     the order is left unchanged
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	if at.Before(o.statusChangedAt) {
		at = o.statusChangedAt
	}

	event, err := NewEvent(kernel.NewUUID(), o.id, o.userID, newStatus, at)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.statusChangedAt = at
	o.pendingEvents = append(o.pendingEvents, event)
	return nil
}

// Cancel is the owner's cancellation. It is the Cancelled transition and is only
// allowed before the order leaves the store.
func (o *Order) Cancel(at time.Time) error {
	return o.ChangeStatus(Cancelled, at)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	o.lines = slices.Clone(lines)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func sumLines(lines []Line) kernel.Money {
	var total kernel.Money
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func copyAddress(address *string) *string {
	if address == nil {
		return nil
	}
	a := *address
	return &a
}
