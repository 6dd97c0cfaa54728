package product

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is the sentinel for catalog misses during order creation.
// Callers can classify the failure with errors.Is without inspecting messages.
var ErrProductNotFound = errors.New("product not found")

// NotFoundError is raised when an order item references a product identifier
// that is absent from the catalog. It carries the offending identifier so
// callers can report exactly which reference failed to resolve.
type NotFoundError struct {
	ProductID int64
}

// NewNotFoundError creates a NotFoundError for the given product identifier.
func NewNotFoundError(productID int64) *NotFoundError {
	return &NotFoundError{ProductID: productID}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product not found: %d", e.ProductID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrProductNotFound
}
