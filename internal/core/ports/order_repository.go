package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store owns identifier assignment: Add returns the persisted form of the
// aggregate so the assigned identifier reaches the caller.
type OrderRepository interface {
	// Add persists a new order aggregate and returns the persisted form,
	// with the store-assigned identifier populated.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order aggregate by its identifier.
	// Returns an errs.ObjectNotFoundError when no order with the given id exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves every persisted order, in whatever order the store yields.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves the orders whose status equals the argument exactly.
	// An empty result is not an error.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
