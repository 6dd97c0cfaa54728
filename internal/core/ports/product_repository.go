package ports

import (
	"context"

	"ordering/internal/core/domain/model/product"
)

// ProductRepository is the read-only catalog accessor. The ordering core never
// writes to the catalog; products are assigned externally.
type ProductRepository interface {
	// Get retrieves a product by its catalog identifier.
	// Returns an errs.ObjectNotFoundError when no product with the given id exists.
	Get(ctx context.Context, id int64) (product.Product, error)
}
