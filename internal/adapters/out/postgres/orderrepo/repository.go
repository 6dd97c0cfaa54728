package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items to the database and returns the
// persisted form of the aggregate, with the database-assigned identifier.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	persisted, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Get retrieves an order by ID, items included.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every persisted order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInStatus retrieves all orders whose status equals the argument exactly.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
