package productrepo

import (
	"context"
	"errors"
	"strconv"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Get retrieves a product by its catalog identifier.
func (r *GormProductRepository) Get(ctx context.Context, id int64) (product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Product{}, errs.NewObjectNotFoundError("product", strconv.FormatInt(id, 10))
		}
		return product.Product{}, err
	}

	return toDomain(dto)
}
