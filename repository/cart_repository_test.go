package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCartRepository_AddItemMergesAmounts(t *testing.T) {
	r := NewCartRepository()
	userID := uuid.New()
	itemID := uuid.New()

	r.AddItem(userID, itemID, 2)
	r.AddItem(userID, itemID, 3)
	r.AddItem(userID, itemID, 1)

	items := r.Snapshot(userID)
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Amount != 6 {
		t.Fatalf("expected amount 6, got %d", items[0].Amount)
	}
	if r.ItemCount(userID) != 1 {
		t.Fatalf("expected item count 1, got %d", r.ItemCount(userID))
	}
}

func TestCartRepository_ConcurrentAddsDontLoseUpdates(t *testing.T) {
	r := NewCartRepository()
	userID := uuid.New()
	itemID := uuid.New()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			r.AddItem(userID, itemID, 1)
		}()
	}
	wg.Wait()

	items := r.Snapshot(userID)
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Amount != workers {
		t.Fatalf("expected amount %d, got %d", workers, items[0].Amount)
	}
}

func TestCartRepository_RemoveItem(t *testing.T) {
	r := NewCartRepository()
	userID := uuid.New()
	kept := uuid.New()
	removed := uuid.New()

	r.AddItem(userID, kept, 1)
	r.AddItem(userID, removed, 2)

	t.Run("removes existing line", func(t *testing.T) {
		r.RemoveItem(userID, removed)
		if got := r.ItemCount(userID); got != 1 {
			t.Fatalf("expected item count 1, got %d", got)
		}
	})

	t.Run("absent item is a no-op", func(t *testing.T) {
		r.RemoveItem(userID, uuid.New())
		if got := r.ItemCount(userID); got != 1 {
			t.Fatalf("expected item count 1, got %d", got)
		}
	})

	t.Run("no-op removal still refreshes activity", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		r.now = func() time.Time { return past }
		r.AddItem(userID, kept, 1) // last activity now an hour ago

		r.now = time.Now
		r.RemoveItem(userID, uuid.New())
		if stale := r.FindInactive(30); len(stale) != 0 {
			t.Fatalf("expected cart to be warm after no-op removal, got %d stale", len(stale))
		}
	})
}

func TestCartRepository_ClearKeepsCart(t *testing.T) {
	r := NewCartRepository()
	userID := uuid.New()

	r.AddItem(userID, uuid.New(), 2)
	r.AddItem(userID, uuid.New(), 1)
	r.ClearCart(userID)

	if got := r.ItemCount(userID); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
	r.mu.Lock()
	_, registered := r.carts[userID]
	r.mu.Unlock()
	if !registered {
		t.Fatal("expected cart entry to survive clear")
	}
}

func TestCartRepository_FindInactiveAndEvict(t *testing.T) {
	r := NewCartRepository()
	staleUser := uuid.New()
	freshUser := uuid.New()

	base := time.Now()
	r.now = func() time.Time { return base.Add(-45 * time.Minute) }
	r.AddItem(staleUser, uuid.New(), 1)

	r.now = func() time.Time { return base }
	r.AddItem(freshUser, uuid.New(), 1)

	stale := r.FindInactive(30)
	if len(stale) != 1 || stale[0].UserID != staleUser {
		t.Fatalf("expected only the stale cart, got %d", len(stale))
	}

	r.Evict(stale)
	// evicting again must be silent
	r.Evict(stale)

	if got := r.ItemCount(staleUser); got != 0 {
		t.Fatalf("expected fresh empty cart after eviction, got %d lines", got)
	}
	if got := r.ItemCount(freshUser); got != 1 {
		t.Fatalf("expected fresh user's cart untouched, got %d lines", got)
	}
}

func TestCartRepository_EvictSkipsRecreatedCart(t *testing.T) {
	r := NewCartRepository()
	userID := uuid.New()

	base := time.Now()
	r.now = func() time.Time { return base.Add(-45 * time.Minute) }
	r.AddItem(userID, uuid.New(), 1)

	stale := r.FindInactive(30)
	if len(stale) != 1 {
		t.Fatalf("expected one stale cart, got %d", len(stale))
	}

	// user comes back between the scan and the eviction
	r.now = func() time.Time { return base }
	r.Evict(stale) // removes the old cart instance
	r.AddItem(userID, uuid.New(), 2)

	fresh := r.FindInactive(30)
	if len(fresh) != 0 {
		t.Fatal("recreated cart must not be stale")
	}
	r.Evict(stale) // the snapshot no longer matches; must be a no-op
	if got := r.ItemCount(userID); got != 1 {
		t.Fatalf("expected recreated cart to survive stale eviction, got %d lines", got)
	}
}

func TestCartRepository_SnapshotIsACopy(t *testing.T) {
	r := NewCartRepository()
	userID := uuid.New()
	itemID := uuid.New()

	r.AddItem(userID, itemID, 1)
	snap := r.Snapshot(userID)
	snap[0].Amount = 99

	if got := r.Snapshot(userID)[0].Amount; got != 1 {
		t.Fatalf("mutating the snapshot leaked into the store: %d", got)
	}
}
