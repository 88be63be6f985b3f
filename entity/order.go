package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status labels. "Unpaid" and "Pending" are both spellings of the initial
// stage; payment is settled out-of-band against the displayed payment code.
const (
	StatusUnpaid    = "Unpaid"
	StatusPending   = "Pending"
	StatusPaid      = "Paid"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// OpenStatuses are the stages during which an order still holds its
// two-digit order number.
var OpenStatuses = []string{StatusUnpaid, StatusPending, StatusPaid}

type Order struct {
	gorm.Model
	OrderNo      int    `json:"orderNo" gorm:"index"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	PickupTime   string `json:"pickupTime"`

	PlacedAt    time.Time       `json:"placedAt"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Status      string          `json:"status" gorm:"index"`
	PaymentCode string          `json:"paymentCode"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
