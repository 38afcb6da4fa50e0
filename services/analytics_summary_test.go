package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vasandree/hits-docker-practice/entity"
	"github.com/vasandree/hits-docker-practice/repository"
)

func TestAnalyticsService_Summary(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	svc := NewAnalyticsService(userRepo, menuRepo, orderRepo, NewAnalyticsCollector())
	svc.now = func() time.Time { return now }

	alice := entity.User{Email: "alice@example.com", BirthDate: now.AddDate(-30, 0, 0)}
	bob := entity.User{Email: "bob@example.com", BirthDate: now.AddDate(-25, 0, 0)}
	for _, u := range []*entity.User{&alice, &bob} {
		if err := userRepo.Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	items := []entity.MenuItem{
		{Name: "Tea", Price: decimal.NewFromInt(2), Category: entity.CategoryDrink},
		{Name: "Soup", Price: decimal.NewFromInt(5), Category: entity.CategoryDish},
		{Name: "Cake", Price: decimal.NewFromInt(4), Category: entity.CategoryDessert},
	}
	for i := range items {
		if err := menuRepo.Create(ctx, &items[i]); err != nil {
			t.Fatalf("create menu item: %v", err)
		}
	}
	if err := menuRepo.SoftDelete(ctx, items[2].ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	orders := []entity.Order{
		{CreationTime: now.Add(-time.Hour), Cost: decimal.NewFromInt(10), UserID: alice.ID},
		{CreationTime: now.AddDate(0, 0, -3), Cost: decimal.NewFromInt(20), UserID: bob.ID},
		{CreationTime: now.AddDate(0, 0, -10), Cost: decimal.NewFromInt(30), UserID: alice.ID},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	got, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if got.TotalUsers != 2 {
		t.Errorf("TotalUsers = %d, want 2", got.TotalUsers)
	}
	if got.TotalMenuItems != 2 {
		t.Errorf("TotalMenuItems = %d, want 2 (deleted items excluded)", got.TotalMenuItems)
	}
	if got.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, want 3", got.TotalOrders)
	}
	if got.OrdersLast7Days != 2 {
		t.Errorf("OrdersLast7Days = %d, want 2", got.OrdersLast7Days)
	}
	if math.Abs(got.AverageOrderCost-20) > 1e-9 {
		t.Errorf("AverageOrderCost = %v, want 20", got.AverageOrderCost)
	}
}

func TestAnalyticsService_SummaryEmptyStore(t *testing.T) {
	db := newTestDB(t)

	svc := NewAnalyticsService(
		repository.NewUserRepository(db),
		repository.NewMenuRepository(db),
		repository.NewOrderRepository(db),
		NewAnalyticsCollector(),
	)

	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.TotalUsers != 0 || got.TotalMenuItems != 0 || got.TotalOrders != 0 || got.OrdersLast7Days != 0 {
		t.Errorf("counts = %+v, want all zero", got)
	}
	if got.AverageOrderCost != 0 {
		t.Errorf("AverageOrderCost = %v, want 0 with no orders", got.AverageOrderCost)
	}
}
