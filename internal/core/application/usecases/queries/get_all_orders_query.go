package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every persisted order.
// This is a parameterless query; no filtering and no pagination are applied.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query fetching all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
