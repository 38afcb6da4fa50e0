package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/entity"
	"github.com/vasandree/hits-docker-practice/repository"
)

const (
	birthdayDiscountPercent = 15
	lunchDiscountPercent    = 10

	birthdayWindowDays = 3
	lunchStartHour     = 11
	lunchEndHour       = 15
)

// PricingService computes cart totals from live menu prices and evaluates
// the discount policy. It reads but never writes.
type PricingService struct {
	MenuRepo *repository.MenuRepository
}

func NewPricingService(menuRepo *repository.MenuRepository) *PricingService {
	return &PricingService{MenuRepo: menuRepo}
}

// CartPrice sums current price x amount over the cart lines. A line whose
// menu item no longer resolves fails the whole computation with
// ErrNotFound; it is never silently skipped.
func (s *PricingService) CartPrice(ctx context.Context, items []entity.CartItem) (decimal.Decimal, error) {
	price := decimal.Zero
	for _, it := range items {
		m, err := s.MenuRepo.GetByID(ctx, it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return decimal.Zero, ErrNotFound
			}
			return decimal.Zero, err
		}
		price = price.Add(m.Price.Mul(decimal.NewFromInt(int64(it.Amount))))
	}
	return price, nil
}

type DiscountInfo struct {
	Percent     int    `json:"percent"`
	Description string `json:"description"`
}

// Discount evaluates the discount policy for an order placed at the given
// moment. The birthday window wins over the lunch window; at most one
// discount applies.
//
// When normalizeBirthday is set (preview mode) the birthdate is shifted to
// the current year and re-stamped to one second past the order moment
// before comparing. Order creation passes false and compares the birthdate
// exactly as stored.
func (s *PricingService) Discount(birthDate, orderMoment time.Time, normalizeBirthday bool) DiscountInfo {
	dob := birthDate
	if normalizeBirthday {
		dob = dob.AddDate(orderMoment.Year()-dob.Year(), 0, 0)
		dob = dob.Add(
			time.Duration(orderMoment.Hour())*time.Hour +
				time.Duration(orderMoment.Minute())*time.Minute +
				time.Duration(orderMoment.Second()+1)*time.Second,
		)
	}

	days := int(orderMoment.Sub(dob).Hours() / 24)
	if days < 0 {
		days = -days
	}
	if days <= birthdayWindowDays {
		return DiscountInfo{Percent: birthdayDiscountPercent, Description: "birthday discount"}
	}

	if h := orderMoment.Hour(); h >= lunchStartHour && h < lunchEndHour {
		return DiscountInfo{Percent: lunchDiscountPercent, Description: "lunch discount"}
	}

	return DiscountInfo{}
}
