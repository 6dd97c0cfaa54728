package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves orders filtered by lifecycle status.
//
// Example:
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	query, _ := NewGetOrdersByStatusQuery(order.Open)
//
//	openOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders still open\n", len(openOrders))
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Only orders whose status equals the queried value
// exactly are returned; an empty result is not an error.
// Results are sorted by order id for consistent output.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
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
		WHERE status = ?
		ORDER BY id
	`, query.Status()).Rows()
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
