package repository

import (
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// GetMenuItem resolves a catalog row inside the checkout transaction.
func (r *OrderRepository) GetMenuItem(tx *gorm.DB, id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := tx.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderTx(tx *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrders(status *string) ([]entity.Order, int64, error) {
	q := r.DB.Model(&entity.Order{})
	if status != nil && *status != "" {
		q = q.Where("status = ?", *status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []entity.Order
	if err := q.Order("placed_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// OpenOrderNumbers returns the numbers currently held by unresolved
// orders. Called inside the checkout transaction so allocation and insert
// see the same state.
func (r *OrderRepository) OpenOrderNumbers(tx *gorm.DB) (map[int]bool, error) {
	var nums []int
	err := tx.Model(&entity.Order{}).
		Where("status IN ?", entity.OpenStatuses).
		Pluck("order_no", &nums).Error
	if err != nil {
		return nil, err
	}
	held := make(map[int]bool, len(nums))
	for _, n := range nums {
		held[n] = true
	}
	return held, nil
}

// UpdateStatusGuard flips the status only when the current one is in the
// allowed set. RowsAffected == 0 means the transition lost or was illegal.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from []string, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
