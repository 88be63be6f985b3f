package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is an immutable snapshot of a cart line at checkout time.
// UnitPrice already includes surcharges; AddOns carries the resolved
// selections verbatim so the line stays price-stable forever.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	AddOns    AddOnList       `json:"addOns" gorm:"type:text"`
}
