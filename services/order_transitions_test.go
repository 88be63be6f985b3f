package services

import (
	"errors"
	"testing"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
)

func placeTestOrder(t *testing.T, svc *OrderService, menuItemID uint) *entity.Order {
	t.Helper()
	order, err := svc.Create(&CreateOrderReq{
		CustomerName: "c", Phone: "1",
		Items: []OrderItemIn{{MenuItemID: menuItemID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return order
}

func TestStatusLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)
	item := seedMenuItem(t, db, "三文鱼寿司", "15元", entity.CategorySushi)
	order := placeTestOrder(t, svc, item.ID)

	if err := svc.SetStatus(order.ID, entity.StatusPaid); err != nil {
		t.Fatalf("Unpaid -> Paid: %v", err)
	}
	if err := svc.SetStatus(order.ID, entity.StatusCompleted); err != nil {
		t.Fatalf("Paid -> Completed: %v", err)
	}

	// Completed is terminal
	if err := svc.SetStatus(order.ID, entity.StatusPaid); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("Completed -> Paid should be illegal, got %v", err)
	}
	if err := svc.SetStatus(order.ID, entity.StatusCancelled); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("Completed -> Cancelled should be illegal, got %v", err)
	}
}

func TestCancelFromPaid(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)
	item := seedMenuItem(t, db, "三文鱼寿司", "15元", entity.CategorySushi)
	order := placeTestOrder(t, svc, item.ID)

	if err := svc.SetStatus(order.ID, entity.StatusPaid); err != nil {
		t.Fatalf("pay: %v", err)
	}
	if err := svc.SetStatus(order.ID, entity.StatusCancelled); err != nil {
		t.Fatalf("Paid -> Cancelled: %v", err)
	}
}

func TestUnknownLabelRejectedWithoutMutation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)
	item := seedMenuItem(t, db, "三文鱼寿司", "15元", entity.CategorySushi)
	order := placeTestOrder(t, svc, item.ID)

	for _, label := range []string{"Shipped", "paid", "DONE", ""} {
		if err := svc.SetStatus(order.ID, label); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("label %q should be rejected, got %v", label, err)
		}
	}

	stored, err := svc.Detail(order.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if stored.Status != entity.StatusUnpaid {
		t.Fatalf("rejected label mutated status to %q", stored.Status)
	}
}

func TestSetStatusMissingOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	if err := svc.SetStatus(404, entity.StatusPaid); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestSetStatusSameLabelIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)
	item := seedMenuItem(t, db, "三文鱼寿司", "15元", entity.CategorySushi)
	order := placeTestOrder(t, svc, item.ID)

	if err := svc.SetStatus(order.ID, entity.StatusUnpaid); err != nil {
		t.Fatalf("setting the current label should be a no-op, got %v", err)
	}
}
