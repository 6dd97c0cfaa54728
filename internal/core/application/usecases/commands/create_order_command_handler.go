package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves every referenced product against the catalog, materializes the
// items with their captured values, and persists the assembled order in
// Open status within a single transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	item, _ := NewItemRequest(1, 100.0, 2)
//	cmd, _ := NewCreateOrderCommand("2025-10-20", "2025-10-15", []ItemRequest{item})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %d created in %s status", created.ID(), created.Status())
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional access to the catalog and the order store.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
//
// Every item request is resolved against the catalog first. If any referenced
// product is absent the whole operation aborts with a product.NotFoundError
// carrying the offending identifier and nothing is persisted. On success the
// order is written once and the persisted form, with the store-assigned
// identifier, is returned to the caller. Collaborator failures propagate
// unchanged; the handler performs no retries and no local recovery.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, itemRequest := range cmd.Items() {
		resolved, err := productRepo.Get(ctx, itemRequest.ProductID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, product.NewNotFoundError(itemRequest.ProductID())
			}
			return nil, err
		}

		item, err := order.NewItem(resolved, itemRequest.Value(), itemRequest.Quantity())
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	newOrder, err := order.NewOrder(items, cmd.DeliveryDate(), cmd.OrderDate())
	if err != nil {
		return nil, err
	}

	created, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
