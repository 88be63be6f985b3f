package services

import (
	"errors"
	"fmt"
)

var (
	ErrCartEmpty             = errors.New("cart is empty")
	ErrLineNotFound          = errors.New("cart line not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrAddOnsNotAllowed      = errors.New("menu item does not accept add-ons")
	ErrInvalidStatus         = errors.New("unknown order status")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrOrderNumbersExhausted = errors.New("no free order numbers")
)

// MissingMenuItemError names the id that failed to resolve so the caller
// can fix the stale cart line.
type MissingMenuItemError struct {
	ID uint
}

func (e *MissingMenuItemError) Error() string {
	return fmt.Sprintf("menu item %d not found", e.ID)
}

func (e *MissingMenuItemError) Unwrap() error { return ErrMenuItemNotFound }
