package services

import (
	"math/rand"

	"gorm.io/gorm"
)

// Two-digit ticket numbers, the range printed on the pickup board.
const (
	orderNoMin = 10
	orderNoMax = 99
)

// allocateOrderNumber picks a number no unresolved order currently holds.
// The start is random so numbers don't hand out sequentially, but the scan
// guarantees no collision with open orders. Must run inside the checkout
// transaction. An exhausted pool fails the checkout explicitly; numbers
// come back as orders complete or cancel.
func (s *OrderService) allocateOrderNumber(tx *gorm.DB) (int, error) {
	held, err := s.Repo.OpenOrderNumbers(tx)
	if err != nil {
		return 0, err
	}
	span := orderNoMax - orderNoMin + 1
	start := rand.Intn(span)
	for i := 0; i < span; i++ {
		n := orderNoMin + (start+i)%span
		if !held[n] {
			return n, nil
		}
	}
	return 0, ErrOrderNumbersExhausted
}
