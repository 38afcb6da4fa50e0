package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItemCategory string

const (
	CategoryDrink   MenuItemCategory = "Drink"
	CategoryDish    MenuItemCategory = "Dish"
	CategoryDessert MenuItemCategory = "Dessert"
)

type MenuItem struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Price       decimal.Decimal  `gorm:"type:decimal(10,2)" json:"price"`
	Category    MenuItemCategory `json:"category"`
	Description string           `json:"description"`
	IsVegan     bool             `json:"isVegan"`
	PhotoPath   string           `json:"photoPath"`
	IsDeleted   bool             `json:"-"`
	CreatedAt   time.Time        `json:"-"`
	UpdatedAt   time.Time        `json:"-"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
