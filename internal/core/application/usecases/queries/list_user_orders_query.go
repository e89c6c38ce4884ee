package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery is the administrators' listing over one user's orders,
// optionally restricted to one status.
type ListUserOrdersQuery struct {
	actor  kernel.Actor
	userID kernel.UUID
	status *order.Status
	page   Page

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery validates the caller, the listed user, the optional status filter and the offset.
func NewListUserOrdersQuery(
	actor kernel.Actor,
	userID kernel.UUID,
	status *order.Status,
	skip int,
) (ListUserOrdersQuery, error) {
	if err := errors.Join(actor.Validate(), userID.Validate()); err != nil {
		return ListUserOrdersQuery{}, err
	}
	statusFilter, err := copyStatusFilter(status)
	if err != nil {
		return ListUserOrdersQuery{}, err
	}
	page, err := NewPage(skip)
	if err != nil {
		return ListUserOrdersQuery{}, err
	}

	return ListUserOrdersQuery{
		actor:  actor,
		userID: userID,
		status: statusFilter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

func (q ListUserOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Status returns the status filter, nil for all statuses.
func (q ListUserOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListUserOrdersQuery) Page() Page {
	return q.page
}
