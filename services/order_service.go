package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/entity"
	"github.com/vasandree/hits-docker-practice/repository"
)

const orderTimeLayout = "01.02.2006 15:04"

const deliverySlotCount = 5

// OrderEvent is pushed to the operator feed whenever an order is created
// or edited.
type OrderEvent struct {
	ID           uint      `json:"orderId"`
	Status       string    `json:"status"`
	DeliveryTime time.Time `json:"deliveryTime"`
}

// OrderEventPublisher decouples the service from the websocket hub.
type OrderEventPublisher interface {
	PublishOrderEvent(ev OrderEvent)
}

// OrderService orchestrates the cart-to-order transition and the order
// lifecycle.
type OrderService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	Cart    *repository.CartRepository
	Users   *repository.UserRepository
	Addrs   *repository.AddressRepository
	Pricing *PricingService
	CartSvc *CartService
	Events  OrderEventPublisher

	MinDeliveryTime  int // minutes until the first offered slot
	DeliveryTimeStep int // minutes between offered slots

	now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cart *repository.CartRepository,
	users *repository.UserRepository,
	addrs *repository.AddressRepository,
	pricing *PricingService,
	minDeliveryTime, deliveryTimeStep int,
) *OrderService {
	return &OrderService{
		DB:               db,
		Repo:             repo,
		Cart:             cart,
		Users:            users,
		Addrs:            addrs,
		Pricing:          pricing,
		MinDeliveryTime:  minDeliveryTime,
		DeliveryTimeStep: deliveryTimeStep,
		now:              time.Now,
	}
}

func (s *OrderService) publish(o *entity.Order) {
	if s.Events == nil {
		return
	}
	s.Events.PublishOrderEvent(OrderEvent{
		ID:           o.ID,
		Status:       o.Status.String(),
		DeliveryTime: o.DeliveryTime,
	})
}

// Create converts the user's cart into an order. The cart is snapshotted
// first; pricing and persistence run without the cart lock, and the cart
// is cleared only after the transaction commits. An item added
// concurrently during creation may be lost with the cleared cart; that
// window is accepted.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, address string, deliveryTime time.Time) (uint, error) {
	if address == "" {
		return 0, ErrInvalidArgument
	}

	orderTime := s.now()
	items := s.Cart.Snapshot(userID)

	price, err := s.Pricing.CartPrice(ctx, items)
	if err != nil {
		return 0, err
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	disc := s.Pricing.Discount(user.BirthDate, orderTime, false)

	order := entity.Order{
		CreationTime: orderTime,
		DeliveryTime: deliveryTime,
		Cost:         price,
		Discount:     disc.Percent,
		Address:      address,
		Status:       entity.StatusNew,
		UserID:       userID,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range items {
			item := entity.OrderItem{OrderID: order.ID, MenuItemID: it.MenuItemID, Amount: it.Amount}
			if err := s.Repo.CreateOrderItem(tx, &item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.Cart.ClearCart(userID)
	s.publish(&order)
	return order.ID, nil
}

// Edit is a raw setter: it does not enforce forward-only transitions.
func (s *OrderService) Edit(ctx context.Context, orderID uint, status entity.OrderStatus, deliveryTime time.Time) error {
	if !status.Valid() {
		return ErrInvalidArgument
	}

	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	o.Status = status
	o.DeliveryTime = deliveryTime
	if err := s.Repo.UpdateOrder(ctx, o); err != nil {
		return err
	}
	s.publish(o)
	return nil
}

// ----- Views -----

type OrderShortView struct {
	ID         uint   `json:"id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	StatusInfo string `json:"statusInfo"`
	Contents   string `json:"contents"`
}

type OrderListView struct {
	Orders      []OrderShortView `json:"orders"`
	CartIsEmpty bool             `json:"cartIsEmpty"`
}

type OrderItemView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Amount int       `json:"amount"`
}

type OrderInfoView struct {
	ID         uint            `json:"id"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
	NextStatus string          `json:"nextStatus"`
	StatusInfo string          `json:"statusInfo"`
	TotalCost  decimal.Decimal `json:"totalCost"`
	Address    string          `json:"address"`
	Items      []OrderItemView `json:"items"`
}

type CreateOrderView struct {
	Cart                *CartView    `json:"cart"`
	Addresses           []string     `json:"addresses"`
	DeliveryTimeOptions []time.Time  `json:"deliveryTimeOptions"`
	Discount            DiscountInfo `json:"discount"`
}

func statusInfo(o *entity.Order) string {
	if o.Status == entity.StatusDelivered {
		return "delivered " + o.DeliveryTime.Format(orderTimeLayout)
	}
	return "expected " + o.DeliveryTime.Format(orderTimeLayout)
}

func (s *OrderService) buildShortView(ctx context.Context, o *entity.Order) (OrderShortView, error) {
	items, err := s.Repo.GetOrderItems(ctx, o.ID)
	if err != nil {
		return OrderShortView{}, err
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.MenuItem.Name)
	}
	return OrderShortView{
		ID:         o.ID,
		Date:       o.CreationTime.Format(orderTimeLayout),
		Status:     o.Status.String(),
		StatusInfo: statusInfo(o),
		Contents:   strings.Join(names, ", "),
	}, nil
}

// GetAll returns every order ranked for the operator worklist.
func (s *OrderService) GetAll(ctx context.Context) ([]OrderShortView, error) {
	orders, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	SortOrders(orders)

	views := make([]OrderShortView, 0, len(orders))
	for _, o := range orders {
		v, err := s.buildShortView(ctx, o)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// GetInfo projects a single order with its frozen line items. The total
// applies the frozen discount to the frozen cost.
func (s *OrderService) GetInfo(ctx context.Context, orderID uint) (*OrderInfoView, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := s.Repo.GetOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	itemViews := make([]OrderItemView, 0, len(items))
	for _, it := range items {
		itemViews = append(itemViews, OrderItemView{
			ID:     it.MenuItemID,
			Name:   it.MenuItem.Name,
			Amount: it.Amount,
		})
	}

	total := o.Cost.
		Mul(decimal.NewFromInt(int64(100 - o.Discount))).
		Div(decimal.NewFromInt(100))

	return &OrderInfoView{
		ID:         o.ID,
		Date:       o.CreationTime.Format(orderTimeLayout),
		Status:     o.Status.String(),
		NextStatus: o.Status.Next().String(),
		StatusInfo: statusInfo(o),
		TotalCost:  total,
		Address:    o.Address,
		Items:      itemViews,
	}, nil
}

// GetPastOrders lists the user's orders, most recent first.
func (s *OrderService) GetPastOrders(ctx context.Context, userID uuid.UUID) (*OrderListView, error) {
	orders, err := s.Repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]OrderShortView, 0, len(orders))
	for _, o := range orders {
		v, err := s.buildShortView(ctx, o)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
		views[i], views[j] = views[j], views[i]
	}

	return &OrderListView{
		Orders:      views,
		CartIsEmpty: s.Cart.ItemCount(userID) == 0,
	}, nil
}

// buildAddressStrings puts the main address first, then the remaining
// addresses in their stored order, deduplicated by formatted string. The
// main address is never excluded.
func buildAddressStrings(addrs []entity.Address) []string {
	if len(addrs) == 0 {
		return []string{}
	}

	main := addrs[0]
	for _, a := range addrs {
		if a.IsMain {
			main = a
			break
		}
	}

	out := []string{main.FormattedString()}
	seen := map[string]bool{out[0]: true}
	for _, a := range addrs {
		s := a.FormattedString()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func (s *OrderService) buildDeliveryTimes(now time.Time) []time.Time {
	times := make([]time.Time, 0, deliverySlotCount)
	for i := 0; i < deliverySlotCount; i++ {
		times = append(times, now.
			Add(time.Duration(s.MinDeliveryTime)*time.Minute).
			Add(time.Duration(i*s.DeliveryTimeStep)*time.Minute))
	}
	return times
}

// GetCreateOrderView assembles everything the order form needs: the
// live-priced cart, the user's delivery addresses, the candidate delivery
// slots and the discount preview. The preview normalizes the birthday so a
// countdown toward the window stays consistent.
func (s *OrderService) GetCreateOrderView(ctx context.Context, userID uuid.UUID) (*CreateOrderView, error) {
	now := s.now()

	cartView, err := s.CartSvc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	addrs, err := s.Addrs.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &CreateOrderView{
		Cart:                cartView,
		Addresses:           buildAddressStrings(addrs),
		DeliveryTimeOptions: s.buildDeliveryTimes(now),
		Discount:            s.Pricing.Discount(user.BirthDate, now, true),
	}, nil
}
