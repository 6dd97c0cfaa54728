package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves the orders whose status equals the argument
// exactly. The status comes from the closed enumeration, so the match is exact
// by construction; an empty result is valid.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Open)
//	if err != nil {
//	    return err
//	}
//	openOrders, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for the given status.
// The status must be a member of the closed enumeration.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the queried status.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}
