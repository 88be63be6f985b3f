package services

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/repository"
)

type CartService struct {
	DB       *gorm.DB
	Repo     *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Pricing  *Pricing
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, menuRepo *repository.MenuRepository, pricing *Pricing) *CartService {
	return &CartService{DB: db, Repo: repo, MenuRepo: menuRepo, Pricing: pricing}
}

type AddToCartIn struct {
	Session    string   `json:"session" binding:"required"`
	MenuItemID uint     `json:"menuItemId" binding:"required"`
	Qty        int      `json:"qty" binding:"omitempty,min=1"`
	AddOns     []string `json:"addOns"`
}

// Get lists a session's lines with a freshly computed subtotal. Nothing
// priced here is ever stored back. A line whose catalog row has vanished
// still lists, it just prices as nothing; checkout is where that becomes
// a hard error.
func (s *CartService) Get(session string) ([]entity.CartItem, []LineBreakdown, decimal.Decimal, error) {
	items, err := s.Repo.ListBySession(s.DB, session)
	if err != nil {
		return nil, nil, decimal.Zero, err
	}
	breakdown := make([]LineBreakdown, 0, len(items))
	subtotal := decimal.Zero
	for _, ln := range items {
		m, err := s.MenuRepo.FindByID(ln.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("cart: line %d references missing menu item %d", ln.ID, ln.MenuItemID)
				continue
			}
			return nil, nil, decimal.Zero, err
		}
		unit, total, sels := s.Pricing.PriceLine(m, ln.Qty, ln.AddOns)
		breakdown = append(breakdown, LineBreakdown{
			MenuItemID: m.ID, Name: m.Name, Qty: ln.Qty,
			UnitPrice: unit, Total: total, AddOns: sels,
		})
		subtotal = subtotal.Add(total)
	}
	return items, breakdown, subtotal, nil
}

func (s *CartService) Add(in *AddToCartIn) (*entity.CartItem, error) {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	m, err := s.MenuRepo.FindByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &MissingMenuItemError{ID: in.MenuItemID}
		}
		return nil, err
	}
	if len(in.AddOns) > 0 && !s.Pricing.Table.AllowsAddOns(m.Category) {
		return nil, ErrAddOnsNotAllowed
	}

	line := &entity.CartItem{
		Session:    in.Session,
		MenuItemID: m.ID,
		Qty:        in.Qty,
		AddOns:     entity.StringList(in.AddOns),
		AddOnsKey:  entity.AddOnsKey(in.AddOns),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpsertLine(tx, line)
	})
	if err != nil {
		return nil, err
	}
	// UpsertLine may have merged into an existing row; re-read the line
	// that actually holds the selection.
	items, err := s.Repo.ListBySession(s.DB, in.Session)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].MenuItemID == line.MenuItemID && items[i].AddOnsKey == line.AddOnsKey {
			return &items[i], nil
		}
	}
	return line, nil
}

// UpdateQty sets a line's quantity; qty <= 0 removes it.
func (s *CartService) UpdateQty(lineID uint, qty int) (removed bool, err error) {
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		removed, err = s.Repo.UpdateQty(tx, lineID, qty)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLineNotFound
		}
		return err
	})
	return removed, err
}

func (s *CartService) RemoveLine(lineID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.RemoveLine(tx, lineID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLineNotFound
			}
			return err
		}
		return nil
	})
}

func (s *CartService) Clear(session string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.ClearSession(tx, session)
	})
}
