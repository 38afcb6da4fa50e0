package entity

import (
	"github.com/google/uuid"
)

// OrderItem freezes one cart line at order-creation time. At most one row
// exists per (order, menu item) pair.
type OrderItem struct {
	OrderID    uint      `gorm:"primaryKey" json:"orderId"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey" json:"menuItemId"`
	Amount     int       `json:"amount"`

	Order    Order    `json:"-"`
	MenuItem MenuItem `json:"-"`
}
