// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is a bigserial column assigned by the database on insert.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status       int       `gorm:"index"`
	DeliveryDate string
	OrderDate    string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. The referenced product is denormalized
// into the row so the captured snapshot survives catalog changes.
type ItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	ProductID   int64
	ProductName string
	Value       float64
	Quantity    int
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero aggregate id maps to a zero DTO id, letting the database assign one.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID:   item.Product().ID(),
			ProductName: item.Product().Name(),
			Value:       item.Value(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		Items:        items,
		Status:       int(aggregate.Status()),
		DeliveryDate: aggregate.DeliveryDate(),
		OrderDate:    aggregate.OrderDate(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		p, err := product.NewProduct(itemDTO.ProductID, itemDTO.ProductName)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(p, itemDTO.Value, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, items, order.Status(dto.Status), dto.DeliveryDate, dto.OrderDate)
}
