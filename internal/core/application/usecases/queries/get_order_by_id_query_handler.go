package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order from the database.
//
// Example:
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	query, _ := NewGetOrderByIDQuery(42)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if response == nil {
//	    fmt.Println("order not found")
//	}
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns nil without an error when no order with
// the queried identifier exists; absence is a representable result here, not
// a failure. Storage errors propagate unchanged.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (*OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orderResp OrderResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			delivery_date,
			order_date
		FROM orders
		WHERE id = ?
	`, query.ID()).Row()

	err := row.Scan(
		&orderResp.ID,
		&status,
		&orderResp.DeliveryDate,
		&orderResp.OrderDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	orderResp.Status = order.Status(status)

	items, err := loadOrderItems(ctx, h.db, orderResp.ID)
	if err != nil {
		return nil, err
	}
	orderResp.Items = items

	return &orderResp, nil
}
