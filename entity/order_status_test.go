package entity

import "testing"

func TestOrderStatusNext(t *testing.T) {
	steps := []struct {
		from, to OrderStatus
	}{
		{StatusNew, StatusProcessing},
		{StatusProcessing, StatusCreated},
		{StatusCreated, StatusDelivered},
		{StatusDelivered, StatusDelivered}, // terminal state clamps
	}
	for _, s := range steps {
		if got := s.from.Next(); got != s.to {
			t.Errorf("Next(%s) = %s, want %s", s.from, got, s.to)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, name := range []string{"New", "Processing", "Created", "Delivered"} {
		s, ok := ParseOrderStatus(name)
		if !ok || s.String() != name {
			t.Errorf("ParseOrderStatus(%q) = %v, %v", name, s, ok)
		}
	}
	if _, ok := ParseOrderStatus("Shipped"); ok {
		t.Error("expected unknown status to fail")
	}
}
