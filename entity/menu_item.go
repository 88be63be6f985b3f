package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Catalog categories. The catalog is owned by menu management; the
// checkout side only ever reads it.
const (
	CategorySushi    = "sushi"
	CategoryHandroll = "handroll"
	CategoryPancake  = "pancake"
)

type MenuItem struct {
	gorm.Model
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Category    string          `json:"category" gorm:"index"`
	IsFeatured  bool            `json:"isFeatured"`
	IsAvailable bool            `json:"isAvailable"`
	Description string          `json:"description"`
	Picture     string          `json:"picture"`

	CartItems  []CartItem  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	OrderItems []OrderItem `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
