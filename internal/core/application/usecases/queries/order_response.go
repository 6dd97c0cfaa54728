// Package queries contains read operations of the CQRS architecture.
// Query handlers read the database directly and return thin response models;
// they never go through the domain aggregates or the unit of work.
package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderResponse represents a persisted order on the read side.
//
// Example:
//
//	response := OrderResponse{
//	    ID:           42,
//	    Status:       order.Open,
//	    DeliveryDate: "2025-10-20",
//	    OrderDate:    "2025-10-15",
//	    Items:        []ItemResponse{{ProductID: 1, ProductName: "Produto Teste", Value: 100.0, Quantity: 2}},
//	}
type OrderResponse struct {
	ID           int64
	Status       order.Status
	DeliveryDate string
	OrderDate    string
	Items        []ItemResponse
}

// ItemResponse represents one line of an order, carrying the product snapshot
// and the value captured at creation time.
type ItemResponse struct {
	ProductID   int64
	ProductName string
	Value       float64
	Quantity    int
}

// loadOrderItems fetches the item lines for one order, in insertion order.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID int64) ([]ItemResponse, error) {
	items := make([]ItemResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			value,
			quantity
		FROM items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ItemResponse
		if err = rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&item.Value,
			&item.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
