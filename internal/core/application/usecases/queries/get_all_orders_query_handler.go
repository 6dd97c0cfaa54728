package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves every persisted order from the database.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetAllOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order id for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			delivery_date,
			order_date
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp OrderResponse
		var status int

		if err = rows.Scan(
			&orderResp.ID,
			&status,
			&orderResp.DeliveryDate,
			&orderResp.OrderDate,
		); err != nil {
			return nil, err
		}
		orderResp.Status = order.Status(status)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, itemsErr := loadOrderItems(ctx, h.db, orders[i].ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		orders[i].Items = items
	}

	return orders, nil
}
