package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	db *gorm.DB
}

// ErrOrderNotFound is returned when an order record is not found.
var ErrOrderNotFound = errors.New("order not found")

type OrderFilters struct {
	StoreID string
	Status  string
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

// Migrate creates or updates the order history tables.
func (r *OrdersRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&OrderRecord{}, &OrderLine{})
}

func (r *OrdersRepository) CreateOrder(ctx context.Context, record *OrderRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *OrdersRepository) GetFilteredOrders(ctx context.Context, offset, limit int, filters OrderFilters) ([]OrderRecord, int64, error) {
	var orders []OrderRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&OrderRecord{})

	// Filter
	if filters.StoreID != "" {
		query = query.Where("store_id = ?", filters.StoreID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *OrdersRepository) GetByReference(ctx context.Context, reference string) (*OrderRecord, error) {
	var order OrderRecord
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("reference = ?", reference).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err // Other DB error
	}
	return &order, nil
}
