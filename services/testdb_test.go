package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/repository"
)

// newTestDB opens a per-test in-memory database with the full schema.
// cache=shared keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, priceText, category string) *entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{
		Name:        name,
		Price:       PriceFromText(priceText),
		Category:    category,
		IsAvailable: true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return &item
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		NewPricing(DefaultSurchargeTable()))
}

func newOrderService(t *testing.T, db *gorm.DB, notifier Notifier) *OrderService {
	t.Helper()
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		NewPricing(DefaultSurchargeTable()),
		notifier)
}
