package entity

// OrderStatus is an ordered lifecycle: the declaration order is load-bearing,
// both for Next and for the operator worklist tie-break.
type OrderStatus int

const (
	StatusNew OrderStatus = iota
	StatusProcessing
	StatusCreated
	StatusDelivered
)

var statusNames = [...]string{"New", "Processing", "Created", "Delivered"}

func (s OrderStatus) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return statusNames[s]
}

func (s OrderStatus) Valid() bool {
	return s >= StatusNew && s <= StatusDelivered
}

// Next returns the following lifecycle state. Delivered is terminal and
// clamps to itself.
func (s OrderStatus) Next() OrderStatus {
	if s >= StatusDelivered {
		return StatusDelivered
	}
	return s + 1
}

// ParseOrderStatus maps a status name to its value; ok is false for
// unknown names.
func ParseOrderStatus(name string) (OrderStatus, bool) {
	for i, n := range statusNames {
		if n == name {
			return OrderStatus(i), true
		}
	}
	return StatusNew, false
}
