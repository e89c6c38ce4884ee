package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery is the administrators' listing over every order,
// optionally restricted to one status.
//
// Example:
//
//	confirmed := order.Confirmed
//	query, err := NewListAllOrdersQuery(admin, &confirmed, 0)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListAllOrdersQuery struct {
	actor  kernel.Actor
	status *order.Status
	page   Page

	guard guard.ConstructorGuard
}

// NewListAllOrdersQuery validates the caller, the optional status filter and the offset.
func NewListAllOrdersQuery(actor kernel.Actor, status *order.Status, skip int) (ListAllOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAllOrdersQuery{}, err
	}
	statusFilter, err := copyStatusFilter(status)
	if err != nil {
		return ListAllOrdersQuery{}, err
	}
	page, err := NewPage(skip)
	if err != nil {
		return ListAllOrdersQuery{}, err
	}

	return ListAllOrdersQuery{
		actor:  actor,
		status: statusFilter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

func (q ListAllOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// Status returns the status filter, nil for all statuses.
func (q ListAllOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListAllOrdersQuery) Page() Page {
	return q.page
}

func copyStatusFilter(status *order.Status) (*order.Status, error) {
	if status == nil {
		return nil, nil
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	filter := *status
	return &filter, nil
}
