package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/repository"
)

// CartService validates cart mutations and builds the live-priced cart
// view. The store itself never errors; validation happens here, before any
// state changes.
type CartService struct {
	Store    *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(store *repository.CartRepository, menuRepo *repository.MenuRepository) *CartService {
	return &CartService{Store: store, MenuRepo: menuRepo}
}

type CartItemView struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Amount int             `json:"amount"`
	Total  decimal.Decimal `json:"total"`
}

type CartView struct {
	Items    []CartItemView  `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (s *CartService) AddItem(ctx context.Context, userID, menuItemID uuid.UUID, amount int) error {
	if amount <= 0 {
		return ErrInvalidArgument
	}
	if _, err := s.MenuRepo.GetByID(ctx, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.Store.AddItem(userID, menuItemID, amount)
	return nil
}

func (s *CartService) RemoveItem(userID, menuItemID uuid.UUID) {
	s.Store.RemoveItem(userID, menuItemID)
}

func (s *CartService) Clear(userID uuid.UUID) {
	s.Store.ClearCart(userID)
}

func (s *CartService) ItemCount(userID uuid.UUID) int {
	return s.Store.ItemCount(userID)
}

// Get resolves the cart lines against the current menu so the view always
// shows live prices. Lines whose menu item was deleted since being added
// fail the whole view with ErrNotFound.
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	items := s.Store.Snapshot(userID)

	view := &CartView{Items: make([]CartItemView, 0, len(items)), Subtotal: decimal.Zero}
	for _, it := range items {
		m, err := s.MenuRepo.GetByID(ctx, it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		total := m.Price.Mul(decimal.NewFromInt(int64(it.Amount)))
		view.Items = append(view.Items, CartItemView{
			ID:     m.ID,
			Name:   m.Name,
			Price:  m.Price,
			Amount: it.Amount,
			Total:  total,
		})
		view.Subtotal = view.Subtotal.Add(total)
	}
	return view, nil
}
