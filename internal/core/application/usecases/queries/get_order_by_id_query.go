package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderByIDQuery retrieves a single order by its store-assigned identifier.
// Absence of the order is a valid result, not a failure.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(42)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if response == nil {
//	    // no order with that id
//	}
type GetOrderByIDQuery struct {
	id int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the given order identifier.
// The identifier must be positive.
func NewGetOrderByIDQuery(id int64) (GetOrderByIDQuery, error) {
	if id <= 0 {
		return GetOrderByIDQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderByIDQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// ID returns the queried order identifier.
func (q GetOrderByIDQuery) ID() int64 {
	return q.id
}
