package product

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a catalog entry that order items reference.
// Its identifier is assigned by the catalog, not by this core,
// and the entity is immutable once referenced by an order item.
//
// Product follows these invariants:
//   - Must have a positive identifier
//   - Must have a non-empty name
//   - Can only be created through NewProduct constructor
type Product struct {
	// id is the catalog-assigned identifier
	id int64

	// name is the display name of the product
	name string

	// isConstructed ensures the product was created via NewProduct
	isConstructed bool
}

// NewProduct creates a Product instance with validation. This is the only way
// to create a valid Product, whether from caller input or from persistence.
func NewProduct(id int64, name string) (Product, error) {
	p := Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their identifiers.
func (p Product) IsEqual(other Product) bool {
	return p.id == other.id
}

// ID returns the catalog-assigned identifier.
func (p Product) ID() int64 {
	return p.id
}

// Name returns the product name.
func (p Product) Name() string {
	return p.name
}

func (p *Product) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
