package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line of an order. Items are exclusively owned by their order and
// have no independent lifecycle.
//
// An item captures a copy of the referenced product together with the unit
// value stated at creation time. The captured value is decoupled from future
// catalog price changes and is never recomputed afterwards.
//
// Item follows these invariants:
//   - The product reference must be a validly constructed Product
//   - Quantity must be a positive integer
//   - Can only be created through NewItem constructor
type Item struct {
	// product is the snapshot of the catalog entry this item references
	product product.Product

	// value is the unit value captured at creation time
	value float64

	// quantity is the ordered amount (must be positive)
	quantity int

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates an Item carrying the resolved product, the stated unit value
// and the quantity. The value is trusted as supplied and not cross-checked
// against catalog pricing.
func NewItem(p product.Product, value float64, quantity int) (Item, error) {
	item := Item{
		value:         value,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProduct(p),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Product returns the product snapshot captured when the item was created.
func (i Item) Product() product.Product {
	return i.product
}

// Value returns the unit value captured at creation time.
func (i Item) Value() float64 {
	return i.value
}

// Quantity returns the ordered amount.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProduct(p product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i.product = p
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
