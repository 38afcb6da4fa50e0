package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vasandree/hits-docker-practice/entity"
)

// CartRepository is the in-memory registry of active carts, one per user.
// All operations take the registry lock, so concurrent adds for the same
// user never lose updates. Carts returned by GetOrCreateCart and
// FindInactive stay owned by the repository; callers must mutate them only
// through repository methods.
type CartRepository struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*entity.Cart
	now   func() time.Time
}

func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[uuid.UUID]*entity.Cart),
		now:   time.Now,
	}
}

func (r *CartRepository) getOrCreate(userID uuid.UUID) *entity.Cart {
	c, ok := r.carts[userID]
	if !ok {
		c = &entity.Cart{UserID: userID, LastActivity: r.now()}
		r.carts[userID] = c
	}
	return c
}

// GetOrCreateCart returns the user's cart, creating an empty one on first
// access. It never fails; unknown users implicitly get state.
func (r *CartRepository) GetOrCreateCart(userID uuid.UUID) *entity.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreate(userID)
}

// AddItem merges amount into an existing line for the menu item or appends
// a new line. Amount must already be validated as positive by the caller.
func (r *CartRepository) AddItem(userID, menuItemID uuid.UUID, amount int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.getOrCreate(userID)
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items[i].Amount += amount
			c.LastActivity = r.now()
			return
		}
	}
	c.Items = append(c.Items, entity.CartItem{MenuItemID: menuItemID, Amount: amount})
	c.LastActivity = r.now()
}

// RemoveItem deletes the line for the menu item if present; removing an
// absent item is a no-op. The activity timestamp refreshes either way so
// the session stays warm.
func (r *CartRepository) RemoveItem(userID, menuItemID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.getOrCreate(userID)
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	c.LastActivity = r.now()
}

// ClearCart empties the item list but keeps the cart registered.
func (r *CartRepository) ClearCart(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.getOrCreate(userID)
	c.Items = nil
	c.LastActivity = r.now()
}

// ItemCount returns the number of distinct lines, not the summed amounts.
func (r *CartRepository) ItemCount(userID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.getOrCreate(userID).Items)
}

// Snapshot copies the current item list so callers can price and persist
// it without holding the registry lock.
func (r *CartRepository) Snapshot(userID uuid.UUID) []entity.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.getOrCreate(userID)
	items := make([]entity.CartItem, len(c.Items))
	copy(items, c.Items)
	return items
}

// FindInactive returns the carts idle for at least thresholdMinutes at
// call time. The returned slice is a snapshot of the registry, intended to
// be handed straight to Evict.
func (r *CartRepository) FindInactive(thresholdMinutes int) []*entity.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	var stale []*entity.Cart
	for _, c := range r.carts {
		if now.Sub(c.LastActivity).Minutes() >= float64(thresholdMinutes) {
			stale = append(stale, c)
		}
	}
	return stale
}

// Evict removes exactly the given carts by identity. A cart that was
// already removed, or replaced by a fresh cart for the same user, is
// silently skipped.
func (r *CartRepository) Evict(carts []*entity.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range carts {
		if cur, ok := r.carts[c.UserID]; ok && cur == c {
			delete(r.carts, c.UserID)
		}
	}
}
