package entity

import (
	"gorm.io/gorm"
)

// CartItem is one line of a session's cart. The session key is an opaque
// client-generated string, not an authenticated identity. No prices are
// stored here; totals are always recomputed from the catalog.
type CartItem struct {
	gorm.Model
	Session string `json:"session" gorm:"index"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int        `json:"qty"`
	AddOns    StringList `json:"addOns" gorm:"type:text"`
	AddOnsKey string     `json:"-" gorm:"index"`
}
