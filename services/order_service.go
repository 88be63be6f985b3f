package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Pricing  *Pricing
	Notifier Notifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, pricing *Pricing, notifier Notifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Pricing: pricing, Notifier: notifier}
}

// ----- DTOs from Controller -----

// ClientLine is a legacy client's view of a cart line. Accepted for shape
// compatibility; the unit price in it is never used for money.
type ClientLine struct {
	MenuItemID uint     `json:"menuItemId"`
	Qty        int      `json:"qty"`
	AddOns     []string `json:"addOns"`
	UnitPrice  string   `json:"unitPrice"`
}

type CheckoutReq struct {
	CustomerName string       `json:"customerName" binding:"required"`
	Phone        string       `json:"phone" binding:"required"`
	PickupTime   string       `json:"pickupTime"`
	Lines        []ClientLine `json:"lines"`
}

type OrderItemIn struct {
	MenuItemID uint     `json:"menuItemId" binding:"required"`
	Qty        int      `json:"qty" binding:"required,min=1"`
	AddOns     []string `json:"addOns"`
}

type CreateOrderReq struct {
	CustomerName string        `json:"customerName" binding:"required"`
	Phone        string        `json:"phone" binding:"required"`
	PickupTime   string        `json:"pickupTime"`
	Items        []OrderItemIn `json:"items" binding:"required"`
}

// priceLines runs the pricing engine against the catalog as seen by the
// current transaction. A missing menu item fails the whole batch, naming
// the id.
func (s *OrderService) priceLines(tx *gorm.DB, lines []entity.CartItem) ([]LineBreakdown, decimal.Decimal, error) {
	lookup := func(id uint) (*entity.MenuItem, error) {
		m, err := s.Repo.GetMenuItem(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &MissingMenuItemError{ID: id}
			}
			return nil, err
		}
		return m, nil
	}
	return s.Pricing.PriceCart(lines, lookup)
}

func (s *OrderService) persistOrder(tx *gorm.DB, customerName, phone, pickupTime string, rows []LineBreakdown, total decimal.Decimal) (*entity.Order, error) {
	no, err := s.allocateOrderNumber(tx)
	if err != nil {
		return nil, err
	}
	order := entity.Order{
		OrderNo:      no,
		CustomerName: customerName,
		Phone:        phone,
		PickupTime:   pickupTime,
		PlacedAt:     time.Now(),
		Total:        total,
		Status:       entity.StatusUnpaid,
		PaymentCode:  uuid.NewString(),
	}
	if err := s.Repo.CreateOrder(tx, &order); err != nil {
		return nil, err
	}
	for _, r := range rows {
		oi := entity.OrderItem{
			OrderID:    order.ID,
			MenuItemID: r.MenuItemID,
			Qty:        r.Qty,
			UnitPrice:  r.UnitPrice,
			Total:      r.Total,
			AddOns:     r.AddOns,
		}
		if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, oi)
	}
	return &order, nil
}

// CheckoutFromCart converts a session's cart into a persisted order.
// Snapshot, re-price, allocate a number, write order + lines and clear the
// cart, all inside one transaction: a failure anywhere leaves the cart
// intact for a retry. Any prices the client sent along are ignored.
func (s *OrderService) CheckoutFromCart(session string, req *CheckoutReq) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListBySession(tx, session)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		rows, total, err := s.priceLines(tx, lines)
		if err != nil {
			return err
		}
		order, err := s.persistOrder(tx, req.CustomerName, req.Phone, req.PickupTime, rows, total)
		if err != nil {
			return err
		}
		if err := s.CartRepo.ClearSession(tx, session); err != nil {
			return err
		}
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyAsync(out)
	return out, nil
}

// Create places an order directly from explicit items, bypassing the cart.
// Items get the same validation and server-side pricing as checkout.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrCartEmpty
	}
	lines := make([]entity.CartItem, len(req.Items))
	for i, it := range req.Items {
		lines[i] = entity.CartItem{
			MenuItemID: it.MenuItemID,
			Qty:        it.Qty,
			AddOns:     entity.StringList(it.AddOns),
		}
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		rows, total, err := s.priceLines(tx, lines)
		if err != nil {
			return err
		}
		order, err := s.persistOrder(tx, req.CustomerName, req.Phone, req.PickupTime, rows, total)
		if err != nil {
			return err
		}
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyAsync(out)
	return out, nil
}

// notifyAsync hands the committed order to the notifier without blocking
// the response. Whatever happens in there only gets logged.
func (s *OrderService) notifyAsync(order *entity.Order) {
	if s.Notifier == nil {
		return
	}
	o := *order
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("notify: panic for order #%02d: %v", o.OrderNo, r)
			}
		}()
		if err := s.Notifier.OrderPlaced(&o); err != nil {
			log.Printf("notify: order #%02d failed: %v", o.OrderNo, err)
		}
	}()
}

// ----- List & Detail -----

func (s *OrderService) List(status *string) ([]entity.Order, int64, error) {
	return s.Repo.ListOrders(status)
}

func (s *OrderService) Detail(id uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}
