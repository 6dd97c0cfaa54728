package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer order. It exclusively owns its
// Items: the order and its items are created together in a single operation
// and items never outlive the order.
//
// Order follows these invariants:
//   - Must have at least one item
//   - Every item must be a validly constructed Item
//   - A newly created order always has status Open
//   - The identifier is assigned by the store at persistence time
//   - Can only be created through NewOrder or RestoreOrder
//
// The delivery and order dates are opaque values. The core passes them through
// without parsing or validating them.
type Order struct {
	// id is the store-assigned identifier (zero until persisted)
	id int64

	// items is the ordered, non-empty sequence of lines
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// deliveryDate is the requested delivery date, passed through opaquely
	deliveryDate string

	// orderDate is the date the order was placed, passed through opaquely
	orderDate string

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with the given items and dates.
// The order starts in Open status and without an identifier; the store assigns
// one at persistence time.
func NewOrder(items []Item, deliveryDate string, orderDate string) (*Order, error) {
	order := &Order{
		status:        Open,
		deliveryDate:  deliveryDate,
		orderDate:     orderDate,
		isConstructed: true,
	}

	if err := order.setItems(items); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts a store-assigned identifier and an arbitrary valid status.
func RestoreOrder(id int64, items []Item, status Status, deliveryDate string, orderDate string) (*Order, error) {
	order := &Order{
		deliveryDate:  deliveryDate,
		orderDate:     orderDate,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the store-assigned identifier. Zero means the order has not been
// persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// Items returns the ordered sequence of lines.
func (o *Order) Items() []Item {
	return o.items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryDate returns the requested delivery date as supplied by the caller.
func (o *Order) DeliveryDate() string {
	return o.deliveryDate
}

// OrderDate returns the order date as supplied by the caller.
func (o *Order) OrderDate() string {
	return o.orderDate
}

// Close marks the order as closed.
//
// No operation of the ordering core calls this; closing is driven by external
// collaborators. The transition is only valid from Open status.
func (o *Order) Close() error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
