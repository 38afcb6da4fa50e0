package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	CreationTime time.Time       `json:"creationTime"`
	DeliveryTime time.Time       `json:"deliveryTime"`
	Cost         decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`
	Discount     int             `json:"discount"`
	Address      string          `json:"address"`
	Status       OrderStatus     `gorm:"index" json:"status"`

	UserID uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	User   User      `json:"-"`

	Items []OrderItem `json:"-"`
}
