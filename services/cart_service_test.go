package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
)

func TestAddMergesIdenticalSelections(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	roll := seedMenuItem(t, db, "培根手卷", "15元", entity.CategoryHandroll)

	in := &AddToCartIn{Session: "tab-a", MenuItemID: roll.ID, Qty: 1, AddOns: []string{"加培根"}}
	if _, err := svc.Add(in); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.Add(in); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items, _, _, err := svc.Get("tab-a")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("identical selections should merge into one line, got %d", len(items))
	}
	if items[0].Qty != 2 {
		t.Fatalf("merged line qty = %d, want 2", items[0].Qty)
	}

	// a different add-on set is a different line
	if _, err := svc.Add(&AddToCartIn{Session: "tab-a", MenuItemID: roll.ID, Qty: 1, AddOns: []string{"加鸡蛋"}}); err != nil {
		t.Fatalf("add with other add-ons: %v", err)
	}
	items, _, _, _ = svc.Get("tab-a")
	if len(items) != 2 {
		t.Fatalf("different add-on set should be its own line, got %d lines", len(items))
	}
}

func TestGetComputesSubtotalFromCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	roll := seedMenuItem(t, db, "培根手卷", "15元", entity.CategoryHandroll)
	sushi := seedMenuItem(t, db, "三文鱼寿司", "15元", entity.CategorySushi)

	if _, err := svc.Add(&AddToCartIn{Session: "s1", MenuItemID: roll.ID, Qty: 2, AddOns: []string{"加培根"}}); err != nil {
		t.Fatalf("add roll: %v", err)
	}
	if _, err := svc.Add(&AddToCartIn{Session: "s1", MenuItemID: sushi.ID, Qty: 1}); err != nil {
		t.Fatalf("add sushi: %v", err)
	}

	_, breakdown, subtotal, err := svc.Get("s1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if want := decimal.NewFromInt(59); !subtotal.Equal(want) { // 2x22 + 15
		t.Fatalf("subtotal = %s, want %s", subtotal, want)
	}
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 priced lines, got %d", len(breakdown))
	}
	if !breakdown[0].UnitPrice.Equal(decimal.NewFromInt(22)) {
		t.Fatalf("roll unit price = %s, want 22", breakdown[0].UnitPrice)
	}
}

func TestUpdateQtyZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	item := seedMenuItem(t, db, "原味煎饼", "10元", entity.CategoryPancake)

	line, err := svc.Add(&AddToCartIn{Session: "s1", MenuItemID: item.ID, Qty: 3})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, err := svc.UpdateQty(line.ID, 0)
	if err != nil {
		t.Fatalf("update qty: %v", err)
	}
	if !removed {
		t.Fatal("qty 0 should remove the line")
	}

	items, _, _, _ := svc.Get("s1")
	if len(items) != 0 {
		t.Fatalf("removed line still listed: %+v", items)
	}
}

func TestUpdateQtySetsQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	item := seedMenuItem(t, db, "原味煎饼", "10元", entity.CategoryPancake)

	line, err := svc.Add(&AddToCartIn{Session: "s1", MenuItemID: item.ID, Qty: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	removed, err := svc.UpdateQty(line.ID, 5)
	if err != nil {
		t.Fatalf("update qty: %v", err)
	}
	if removed {
		t.Fatal("positive qty should not remove the line")
	}
	items, _, _, _ := svc.Get("s1")
	if len(items) != 1 || items[0].Qty != 5 {
		t.Fatalf("expected one line with qty 5, got %+v", items)
	}
}

func TestUpdateQtyMissingLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	if _, err := svc.UpdateQty(42, 1); !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestCartIsSessionScoped(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	item := seedMenuItem(t, db, "芝士煎饼", "13元", entity.CategoryPancake)

	if _, err := svc.Add(&AddToCartIn{Session: "alice", MenuItemID: item.ID, Qty: 1}); err != nil {
		t.Fatalf("add alice: %v", err)
	}
	if _, err := svc.Add(&AddToCartIn{Session: "bob", MenuItemID: item.ID, Qty: 2}); err != nil {
		t.Fatalf("add bob: %v", err)
	}

	if err := svc.Clear("alice"); err != nil {
		t.Fatalf("clear alice: %v", err)
	}

	aliceItems, _, _, _ := svc.Get("alice")
	bobItems, _, _, _ := svc.Get("bob")
	if len(aliceItems) != 0 {
		t.Fatalf("alice's cart should be empty, got %d lines", len(aliceItems))
	}
	if len(bobItems) != 1 || bobItems[0].Qty != 2 {
		t.Fatalf("bob's cart should be untouched, got %+v", bobItems)
	}
}

func TestAddUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddToCartIn{Session: "s1", MenuItemID: 999, Qty: 1})
	var miss *MissingMenuItemError
	if !errors.As(err, &miss) {
		t.Fatalf("expected MissingMenuItemError, got %v", err)
	}
	if miss.ID != 999 {
		t.Fatalf("error should name the missing id, got %d", miss.ID)
	}
}

func TestAddOnsRejectedForSushi(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	sushi := seedMenuItem(t, db, "三文鱼寿司", "15元", entity.CategorySushi)

	_, err := svc.Add(&AddToCartIn{Session: "s1", MenuItemID: sushi.ID, Qty: 1, AddOns: []string{"加培根"}})
	if !errors.Is(err, ErrAddOnsNotAllowed) {
		t.Fatalf("expected ErrAddOnsNotAllowed, got %v", err)
	}
}
