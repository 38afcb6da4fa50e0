package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vasandree/hits-docker-practice/repository"
)

// CartSweeper periodically evicts carts left idle past the configured
// threshold. It talks to the cart registry only through its public
// operations and never blocks user-facing cart calls beyond the registry
// critical section.
type CartSweeper struct {
	Store           *repository.CartRepository
	Interval        time.Duration
	InactiveMinutes int
	Log             *slog.Logger
}

func NewCartSweeper(store *repository.CartRepository, interval time.Duration, inactiveMinutes int, log *slog.Logger) *CartSweeper {
	return &CartSweeper{Store: store, Interval: interval, InactiveMinutes: inactiveMinutes, Log: log}
}

// Run sweeps on every tick until ctx is cancelled. A failed cycle is
// logged and the next tick still fires.
func (s *CartSweeper) Run(ctx context.Context) error {
	t := time.NewTicker(s.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.sweep()
		}
	}
}

func (s *CartSweeper) sweep() {
	defer func() {
		if r := recover(); r != nil {
			s.Log.Error("cart sweep cycle failed", "panic", r)
		}
	}()

	stale := s.Store.FindInactive(s.InactiveMinutes)
	if len(stale) == 0 {
		return
	}
	s.Store.Evict(stale)
	s.Log.Info("evicted inactive carts", "count", len(stale))
}
