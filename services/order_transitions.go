package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
)

// statusTransitions is the full state machine: Unpaid/Pending → Paid →
// Completed, with Cancelled reachable until completion. Staff trigger
// every transition; nothing moves on its own.
var statusTransitions = map[string][]string{
	entity.StatusUnpaid:    {entity.StatusPaid, entity.StatusCancelled},
	entity.StatusPending:   {entity.StatusPaid, entity.StatusCancelled},
	entity.StatusPaid:      {entity.StatusCompleted, entity.StatusCancelled},
	entity.StatusCompleted: {},
	entity.StatusCancelled: {},
}

// IsValidStatus reports whether a label is in the allow-list at all.
func IsValidStatus(label string) bool {
	_, ok := statusTransitions[label]
	return ok
}

// statusesLeadingTo inverts the transition map: which current statuses may
// legally move to the target label.
func statusesLeadingTo(target string) []string {
	var from []string
	for cur, nexts := range statusTransitions {
		for _, n := range nexts {
			if n == target {
				from = append(from, cur)
			}
		}
	}
	return from
}

// SetStatus moves an order to the given label. Unknown labels are
// rejected without touching the order; legal labels go through a guarded
// conditional update so concurrent staff actions cannot double-apply.
func (s *OrderService) SetStatus(orderID uint, label string) error {
	if !IsValidStatus(label) {
		return ErrInvalidStatus
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderTx(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if o.Status == label {
			return nil
		}
		from := statusesLeadingTo(label)
		if len(from) == 0 {
			return ErrIllegalTransition
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, label)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrIllegalTransition
		}
		return nil
	})
}
