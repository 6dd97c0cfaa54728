package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemRequestIsNotConstructed = errors.New(
		"ItemRequest must be created via NewItemRequest constructor",
	)
	ErrItemsAreRequired   = errors.New("at least one item is required")
	ErrProductIDIsInvalid = errors.New("product id must be greater than 0")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// ItemRequest names a product and states the unit value and quantity for one
// order line. The value is trusted as-is and not recomputed from the catalog.
type ItemRequest struct { //nolint:recvcheck //using for validation
	productID int64
	value     float64
	quantity  int

	guard guard.ConstructorGuard
}

// NewItemRequest creates a line request for a new order.
// Validates that the product id and the quantity are positive.
func NewItemRequest(productID int64, value float64, quantity int) (ItemRequest, error) {
	itemRequest := ItemRequest{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemRequest.setProductID(productID),
		itemRequest.setQuantity(quantity),
	); err != nil {
		return ItemRequest{}, err
	}

	return itemRequest, nil
}

// Validate ensures the item request was created through the constructor.
func (r ItemRequest) Validate() error {
	return r.guard.Validate(ErrItemRequestIsNotConstructed)
}

// ProductID returns the referenced product identifier.
func (r ItemRequest) ProductID() int64 {
	return r.productID
}

// Value returns the stated unit value.
func (r ItemRequest) Value() float64 {
	return r.value
}

// Quantity returns the requested amount.
func (r ItemRequest) Quantity() int {
	return r.quantity
}

func (r *ItemRequest) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	r.productID = productID
	return nil
}

func (r *ItemRequest) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	r.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to create a new order.
// It carries the delivery and order dates (opaque values, passed through
// unparsed) and a non-empty sequence of item requests.
//
// Example:
//
//	item, err := NewItemRequest(1, 100.0, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid item: %w", err)
//	}
//
//	cmd, err := NewCreateOrderCommand("2025-10-20", "2025-10-15", []ItemRequest{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	deliveryDate string
	orderDate    string
	items        []ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that at least one item request is present and that every item
// request went through its constructor. The dates are opaque and not parsed.
func NewCreateOrderCommand(deliveryDate string, orderDate string, items []ItemRequest) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		deliveryDate: deliveryDate,
		orderDate:    orderDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := orderCommand.setItems(items); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() string {
	return c.deliveryDate
}

// OrderDate returns the date the order was placed.
func (c CreateOrderCommand) OrderDate() string {
	return c.orderDate
}

// Items returns the ordered sequence of item requests.
func (c CreateOrderCommand) Items() []ItemRequest {
	return c.items
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
