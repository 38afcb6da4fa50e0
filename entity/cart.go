package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart lives in memory for the lifetime of the process; it is never
// persisted. The cart repository owns every Cart instance and serializes
// all access to it.
type Cart struct {
	UserID       uuid.UUID
	Items        []CartItem
	LastActivity time.Time
}

type CartItem struct {
	MenuItemID uuid.UUID
	Amount     int
}
