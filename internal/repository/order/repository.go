package order

import (
	"fmt"
	"time"

	"github.com/HackerKing5128/voicecart/internal/domains/order"
	"gorm.io/gorm"
)

// GormOrderRepo implements order.Repository backed by GORM.
type GormOrderRepo struct {
	db *gorm.DB
}

// NewGormOrderRepo creates a new GORM-backed order repository
func NewGormOrderRepo(db *gorm.DB) *GormOrderRepo {
	return &GormOrderRepo{db: db}
}

// Create persists an order together with its line items.
func (r *GormOrderRepo) Create(o *order.Order) error {
	entity := NewOrderEntityFromDomain(o)

	if err := r.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// GetByID fetches an order with its line items.
func (r *GormOrderRepo) GetByID(orderID string) (*order.Order, error) {
	var entity OrderEntity

	err := r.db.
		Preload("Items").
		Where("order_id = ?", orderID).
		First(&entity).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return entity.ToDomain(), nil
}

// GetLatest fetches the most recently created order.
func (r *GormOrderRepo) GetLatest() (*order.Order, error) {
	var entity OrderEntity

	err := r.db.
		Preload("Items").
		Order("created_at DESC").
		First(&entity).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get latest order: %w", err)
	}

	return entity.ToDomain(), nil
}

// ListRecent fetches up to limit orders, newest first.
func (r *GormOrderRepo) ListRecent(limit int) ([]order.Order, error) {
	var entities []OrderEntity

	err := r.db.
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]order.Order, len(entities))
	for i := range entities {
		orders[i] = *entities[i].ToDomain()
	}
	return orders, nil
}

// UpdateStatus writes a new status and bumps updated_at in one statement.
func (r *GormOrderRepo) UpdateStatus(orderID string, status order.Status) (*order.Order, error) {
	result := r.db.
		Model(&OrderEntity{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, order.ErrOrderNotFound
	}

	return r.GetByID(orderID)
}
