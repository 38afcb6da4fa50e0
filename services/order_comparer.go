package services

import (
	"sort"

	"github.com/vasandree/hits-docker-practice/entity"
)

// CompareOrders ranks orders for the operator worklist: New orders first,
// then earlier delivery time, then lower status in declaration order. Nil
// sorts after every real order; two nils are equal. The result is a strict
// weak ordering, safe for any stable sort.
func CompareOrders(a, b *entity.Order) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}

	if a.Status == entity.StatusNew && b.Status != entity.StatusNew {
		return -1
	}
	if b.Status == entity.StatusNew && a.Status != entity.StatusNew {
		return 1
	}

	if a.DeliveryTime.After(b.DeliveryTime) {
		return 1
	}
	if a.DeliveryTime.Before(b.DeliveryTime) {
		return -1
	}

	if a.Status < b.Status {
		return -1
	}
	if a.Status > b.Status {
		return 1
	}
	return 0
}

func SortOrders(orders []*entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return CompareOrders(orders[i], orders[j]) < 0
	})
}
