package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Address struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StreetName     string    `json:"streetName"`
	HouseNumber    string    `json:"houseNumber"`
	EntranceNumber string    `json:"entranceNumber"`
	FlatNumber     string    `json:"flatNumber"`
	Note           string    `json:"note"`
	Name           string    `json:"name"`
	IsMain         bool      `json:"isMain"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`

	UserID uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	User   User      `json:"-"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// FormattedString renders the address the way it is shown on order forms.
func (a *Address) FormattedString() string {
	s := fmt.Sprintf("%s St., %s", a.StreetName, a.HouseNumber)
	if a.EntranceNumber != "" {
		s += ", entrance " + a.EntranceNumber
	}
	s += ", apt. " + a.FlatNumber
	return s
}
