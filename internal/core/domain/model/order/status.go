package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> OutForDelivery ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// The persisted and wire form is the upper-case name returned by String.
type Status int

const (
	// Unknown catches uninitialized or unparsable values.
	Unknown Status = iota

	// Pending is the status every order is created with.
	Pending

	// Confirmed means the store accepted the order.
	Confirmed

	// OutForDelivery means the order left the store.
	OutForDelivery

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal. It is reachable by the owner's cancel or by an administrator.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getTransitions is the adjacency table of the lifecycle. Statuses missing
// from the map, or mapped to no targets, are terminal.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered},
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus maps the persisted or wire name of a status back to a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate reports Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0
}

// CanTransitionTo reports whether next is adjacent to s in the lifecycle.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the lifecycle allows moving from s to next.
//
// Returns:
//   - (next, nil) on an allowed transition
//   - (Unknown, ValueIsInvalidError) when next is not a valid status
//   - (Unknown, StatusTransitionIsInvalidError) when next is not adjacent to s,
//     including s == next and any move out of a terminal status
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewStatusTransitionIsInvalidError(s, next)
	}
	return next, nil
}
