package services

import (
	"testing"
	"time"

	"github.com/vasandree/hits-docker-practice/entity"
)

func TestCompareOrders_PrioritizesNewOrders(t *testing.T) {
	base := time.Now()
	newOrder := &entity.Order{Status: entity.StatusNew, DeliveryTime: base.Add(2 * time.Hour)}
	delivered := &entity.Order{Status: entity.StatusDelivered, DeliveryTime: base.Add(time.Hour)}

	if CompareOrders(newOrder, delivered) >= 0 {
		t.Error("New order must sort before a delivered one, even with a later delivery time")
	}
	if CompareOrders(delivered, newOrder) <= 0 {
		t.Error("comparison must be antisymmetric")
	}
}

func TestCompareOrders_UsesDeliveryTimeWhenStatusSame(t *testing.T) {
	base := time.Now()
	early := &entity.Order{Status: entity.StatusProcessing, DeliveryTime: base.Add(time.Hour)}
	late := &entity.Order{Status: entity.StatusProcessing, DeliveryTime: base.Add(2 * time.Hour)}

	if CompareOrders(early, late) >= 0 {
		t.Error("earlier delivery must sort first")
	}
}

func TestCompareOrders_BreaksTiesByStatusOrdinal(t *testing.T) {
	when := time.Now().Add(time.Hour)
	processing := &entity.Order{Status: entity.StatusProcessing, DeliveryTime: when}
	created := &entity.Order{Status: entity.StatusCreated, DeliveryTime: when}

	if CompareOrders(processing, created) >= 0 {
		t.Error("lower status ordinal must sort first on equal delivery times")
	}
	if CompareOrders(processing, processing) != 0 {
		t.Error("equal orders must compare equal")
	}
}

func TestCompareOrders_HandlesNils(t *testing.T) {
	real := &entity.Order{Status: entity.StatusProcessing}

	if CompareOrders(nil, nil) != 0 {
		t.Error("two nil orders must be equal")
	}
	if CompareOrders(nil, real) <= 0 {
		t.Error("nil must sort after a real order")
	}
	if CompareOrders(real, nil) >= 0 {
		t.Error("a real order must sort before nil")
	}
}

func TestSortOrders_IsStableWorklistOrder(t *testing.T) {
	base := time.Now()
	delivered := &entity.Order{ID: 1, Status: entity.StatusDelivered, DeliveryTime: base.Add(time.Hour)}
	newLate := &entity.Order{ID: 2, Status: entity.StatusNew, DeliveryTime: base.Add(3 * time.Hour)}
	processing := &entity.Order{ID: 3, Status: entity.StatusProcessing, DeliveryTime: base.Add(time.Hour)}
	newEarly := &entity.Order{ID: 4, Status: entity.StatusNew, DeliveryTime: base.Add(2 * time.Hour)}

	orders := []*entity.Order{delivered, newLate, processing, newEarly}
	SortOrders(orders)

	want := []uint{4, 2, 3, 1}
	for i, o := range orders {
		if o.ID != want[i] {
			t.Fatalf("position %d: got order %d, want %d", i, o.ID, want[i])
		}
	}
}
