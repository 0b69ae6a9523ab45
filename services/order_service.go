package services

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/surukutlaManoj/Food-Delivery/entity"
	"github.com/surukutlaManoj/Food-Delivery/pricing"
)

// RestaurantLookup resolves the restaurant an order is placed against.
type RestaurantLookup interface {
	GetRestaurant(id uint) (*entity.Restaurant, error)
}

// OrderStore is the durable order repository. Guarded updates apply their
// fields only while the guarded column still holds the expected value and
// report whether a row was written, which is what keeps two concurrent
// payments from both succeeding.
type OrderStore interface {
	Create(o *entity.Order) error
	FindByID(id uint) (*entity.Order, error)
	FindForUser(userID, orderID uint) (*entity.Order, error)
	ListForUser(userID uint, status entity.OrderStatus, page, limit int) ([]entity.Order, int64, error)
	UpdateStatusGuard(orderID uint, from, to entity.OrderStatus, fields map[string]any) (bool, error)
	UpdatePaymentGuard(orderID uint, from entity.PaymentStatus, fields map[string]any) (bool, error)
}

// OrderConfig carries the tunables of the order flow. The payment gateway
// simulation takes its probability and randomness source from here so
// tests can force either outcome.
type OrderConfig struct {
	TaxRate            float64
	PaymentSuccessRate float64
	Now                func() time.Time
	Rand               *rand.Rand
}

type OrderService struct {
	Orders      OrderStore
	Restaurants RestaurantLookup
	Notify      Notifier

	taxRate     float64
	successRate float64
	now         func() time.Time
	rng         *rand.Rand
}

func NewOrderService(orders OrderStore, restaurants RestaurantLookup, notify Notifier, cfg OrderConfig) *OrderService {
	if notify == nil {
		notify = NopNotifier{}
	}
	if cfg.TaxRate == 0 {
		cfg.TaxRate = pricing.DefaultTaxRate
	}
	if cfg.PaymentSuccessRate == 0 {
		cfg.PaymentSuccessRate = 0.95
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &OrderService{
		Orders:      orders,
		Restaurants: restaurants,
		Notify:      notify,
		taxRate:     cfg.TaxRate,
		successRate: cfg.PaymentSuccessRate,
		now:         cfg.Now,
		rng:         cfg.Rand,
	}
}

// ----- DTOs from controller -----

type OrderItemIn struct {
	Name           string                         `json:"name" binding:"required"`
	UnitPrice      float64                        `json:"unitPrice" binding:"min=0"`
	Quantity       int                            `json:"quantity" binding:"required,min=1"`
	Customizations []entity.SelectedCustomization `json:"customizations"`
}

type CreateOrderIn struct {
	RestaurantID          uint                   `json:"restaurantId" binding:"required"`
	Items                 []OrderItemIn          `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress       entity.DeliveryAddress `json:"deliveryAddress" binding:"required"`
	SpecialInstructions   string                 `json:"specialInstructions" binding:"max=500"`
	EstimatedDeliveryTime *time.Time             `json:"estimatedDeliveryTime"`
}

// Create validates the restaurant and minimum order, prices the submitted
// items and persists the order as pending/pending.
//
// Pricing trusts the unit prices the client submitted instead of looking
// them up from the restaurant menu. Known weakness carried over from the
// storefront; see DESIGN.md.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*entity.Order, error) {
	r, err := s.Restaurants.GetRestaurant(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !r.IsActive {
		return nil, ErrRestaurantNotFound
	}

	subtotal := 0.0
	for _, it := range in.Items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	if subtotal < r.MinOrder {
		return nil, &MinimumOrderError{MinOrder: r.MinOrder}
	}

	totals := pricing.ComputeTotals(subtotal, r.DeliveryFee, s.taxRate)

	est := in.EstimatedDeliveryTime
	if est == nil {
		e := s.estimateDeliveryTime()
		est = &e
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		var custom datatypes.JSON
		if len(it.Customizations) > 0 {
			raw, err := json.Marshal(it.Customizations)
			if err != nil {
				return nil, err
			}
			custom = raw
		}
		items = append(items, entity.OrderItem{
			Name:           it.Name,
			UnitPrice:      it.UnitPrice,
			Quantity:       it.Quantity,
			Customizations: custom,
		})
	}

	order := &entity.Order{
		UserID:                userID,
		RestaurantID:          r.ID,
		Items:                 items,
		TotalAmount:           totals.Subtotal,
		DeliveryFee:           totals.DeliveryFee,
		Tax:                   totals.Tax,
		FinalAmount:           totals.Total,
		DeliveryAddress:       in.DeliveryAddress,
		Status:                entity.StatusPending,
		PaymentID:             "pay_" + uuid.NewString(),
		PaymentStatus:         entity.PaymentPending,
		EstimatedDeliveryTime: est,
		SpecialInstructions:   in.SpecialInstructions,
	}

	if err := s.Orders.Create(order); err != nil {
		return nil, err
	}

	s.Notify.Publish(order.ID, Event{
		Type: EventOrderCreated,
		Payload: map[string]any{
			"orderId":               order.ID,
			"status":                order.Status,
			"estimatedDeliveryTime": order.EstimatedDeliveryTime,
		},
	})
	return order, nil
}

// estimateDeliveryTime draws a preparation window of 15-35 minutes plus a
// transit window of 20-40 minutes.
func (s *OrderService) estimateDeliveryTime() time.Time {
	preparation := 15 + s.rng.Intn(21)
	transit := 20 + s.rng.Intn(21)
	return s.now().Add(time.Duration(preparation+transit) * time.Minute)
}

// ProcessPayment runs the simulated gateway for the user's order. On
// success the order flips to paid+confirmed in one guarded write; losing
// that race reports the order as already paid.
func (s *OrderService) ProcessPayment(userID, orderID uint, method string) (*entity.Order, error) {
	o, err := s.Orders.FindForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if o.PaymentStatus == entity.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	if s.rng.Float64() >= s.successRate {
		if _, err := s.Orders.UpdatePaymentGuard(o.ID, o.PaymentStatus, map[string]any{
			"payment_status": entity.PaymentFailed,
		}); err != nil {
			return nil, err
		}
		return nil, ErrPaymentFailed
	}

	ok, err := s.Orders.UpdatePaymentGuard(o.ID, o.PaymentStatus, map[string]any{
		"payment_status": entity.PaymentPaid,
		"status":         entity.StatusConfirmed,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyPaid
	}

	o, err = s.Orders.FindByID(o.ID)
	if err != nil {
		return nil, err
	}

	s.Notify.Publish(o.ID, Event{
		Type: EventOrderPayment,
		Payload: map[string]any{
			"orderId":               o.ID,
			"paymentStatus":         o.PaymentStatus,
			"status":                o.Status,
			"estimatedDeliveryTime": o.EstimatedDeliveryTime,
		},
	})
	return o, nil
}

// ----- Queries -----

func (s *OrderService) ListForUser(userID uint, status entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	return s.Orders.ListForUser(userID, status, page, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Orders.FindForUser(userID, orderID)
}

// TrackingInfo is the mock courier position reported while delivering.
type TrackingInfo struct {
	OrderID               uint               `json:"orderId"`
	Status                entity.OrderStatus `json:"status"`
	EstimatedDeliveryTime *time.Time         `json:"estimatedDeliveryTime,omitempty"`
	Location              *CourierLocation   `json:"location,omitempty"`
}

type CourierLocation struct {
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	EstimatedArrival *time.Time `json:"estimatedArrival,omitempty"`
	DriverName       string     `json:"driverName"`
	Vehicle          string     `json:"vehicle"`
}

// Track returns the order status plus a simulated courier location while
// the order is out for delivery.
func (s *OrderService) Track(userID, orderID uint) (*TrackingInfo, error) {
	o, err := s.Orders.FindForUser(userID, orderID)
	if err != nil {
		return nil, err
	}

	info := &TrackingInfo{
		OrderID:               o.ID,
		Status:                o.Status,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
	}
	if o.Status == entity.StatusDelivering {
		// random offset of roughly a kilometer around a fixed demo origin
		const offset = 0.01
		info.Location = &CourierLocation{
			Latitude:         40.7128 + (s.rng.Float64()-0.5)*offset,
			Longitude:        -74.0060 + (s.rng.Float64()-0.5)*offset,
			EstimatedArrival: o.EstimatedDeliveryTime,
			DriverName:       "John Doe",
			Vehicle:          "Honda Civic",
		}
	}
	return info, nil
}
