package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// CreateOrder runs inside the caller's transaction so the order and its
// line items commit as one unit.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := r.DB.WithContext(ctx).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("creation_time >= ?", since).
		Count(&count).Error
	return count, err
}

// AverageCost averages the pre-discount cost over all orders; zero when
// there are none.
func (r *OrderRepository) AverageCost(ctx context.Context) (float64, error) {
	var avg float64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("COALESCE(AVG(cost), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *OrderRepository) UpdateOrder(ctx context.Context, o *entity.Order) error {
	return r.DB.WithContext(ctx).Save(o).Error
}

// GetOrderItems loads the frozen line items with their menu items so views
// can show names.
func (r *OrderRepository) GetOrderItems(ctx context.Context, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Preload("MenuItem").
		Find(&items).Error
	return items, err
}
