package services

import (
	"context"
	"time"

	"github.com/vasandree/hits-docker-practice/repository"
)

// AnalyticsService combines the in-process request collector with
// store-level counters for the admin dashboard.
type AnalyticsService struct {
	Users     *repository.UserRepository
	Menu      *repository.MenuRepository
	Orders    *repository.OrderRepository
	Collector *AnalyticsCollector

	now func() time.Time
}

func NewAnalyticsService(
	users *repository.UserRepository,
	menu *repository.MenuRepository,
	orders *repository.OrderRepository,
	collector *AnalyticsCollector,
) *AnalyticsService {
	return &AnalyticsService{
		Users:     users,
		Menu:      menu,
		Orders:    orders,
		Collector: collector,
		now:       time.Now,
	}
}

type AnalyticsSummary struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalMenuItems   int64   `json:"totalMenuItems"`
	TotalOrders      int64   `json:"totalOrders"`
	OrdersLast7Days  int64   `json:"ordersLast7Days"`
	AverageOrderCost float64 `json:"averageOrderCost"`
}

// Summary reports store-wide totals. Menu items count only what is still
// on the menu; the order average is the pre-discount cost.
func (s *AnalyticsService) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	lastWeek := s.now().UTC().AddDate(0, 0, -7)

	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalMenuItems, err := s.Menu.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.Orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	recentOrders, err := s.Orders.CountCreatedSince(ctx, lastWeek)
	if err != nil {
		return nil, err
	}
	avgCost, err := s.Orders.AverageCost(ctx)
	if err != nil {
		return nil, err
	}

	return &AnalyticsSummary{
		TotalUsers:       totalUsers,
		TotalMenuItems:   totalMenuItems,
		TotalOrders:      totalOrders,
		OrdersLast7Days:  recentOrders,
		AverageOrderCost: avgCost,
	}, nil
}
