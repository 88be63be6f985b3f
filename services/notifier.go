package services

import (
	"log"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
)

// Notifier receives a completed order for out-of-band delivery. Checkout
// never waits on it and never fails because of it.
type Notifier interface {
	OrderPlaced(order *entity.Order) error
}

// LogNotifier is the default delivery: the order ticket goes to the log.
type LogNotifier struct {
	ShopName string
}

func (n *LogNotifier) OrderPlaced(o *entity.Order) error {
	log.Printf("%s: order #%02d placed by %s (%s), pickup %s, total %s, pay code %s",
		n.ShopName, o.OrderNo, o.CustomerName, o.Phone, o.PickupTime,
		FormatPrice(o.Total), o.PaymentCode)
	return nil
}
