package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrListMyOrdersQueryIsNotConstructed = errors.New(
	"ListMyOrdersQuery must be created via NewListMyOrdersQuery constructor",
)

// ListMyOrdersQuery pages through the orders of the calling user.
//
// Example:
//
//	query, err := NewListMyOrdersQuery(actor, 5)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	// orders holds the caller's 6th to 10th most recent orders
type ListMyOrdersQuery struct {
	actor kernel.Actor
	page  Page

	guard guard.ConstructorGuard
}

// NewListMyOrdersQuery validates the caller and the offset.
func NewListMyOrdersQuery(actor kernel.Actor, skip int) (ListMyOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListMyOrdersQuery{}, err
	}
	page, err := NewPage(skip)
	if err != nil {
		return ListMyOrdersQuery{}, err
	}

	return ListMyOrdersQuery{
		actor: actor,
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListMyOrdersQueryIsNotConstructed)
}

func (q ListMyOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListMyOrdersQuery) Page() Page {
	return q.page
}
