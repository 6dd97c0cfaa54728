// Package productrepo provides the read-only catalog adapter. The ordering
// service never writes to the products table; catalog entries are maintained
// by an external system.
package productrepo

import (
	"ordering/internal/core/domain/model/product"
)

// ProductDTO represents the database structure of a catalog entry.
// Identifiers are assigned by the catalog owner, not by this service.
type ProductDTO struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for catalog entries.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product entity.
func toDomain(dto ProductDTO) (product.Product, error) {
	return product.NewProduct(dto.ID, dto.Name)
}
