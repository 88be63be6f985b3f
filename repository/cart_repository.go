package repository

import (
	"errors"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// ListBySession reads through the given handle so checkout can snapshot
// inside its own transaction.
func (r *CartRepository) ListBySession(db *gorm.DB, session string) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := db.Where("session = ?", session).Order("id").Find(&items).Error
	return items, err
}

func (r *CartRepository) GetLine(id uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertLine merges on (session, menu_item_id, add_ons_key): adding the
// same item with the same add-on set bumps qty instead of inserting.
func (r *CartRepository) UpsertLine(tx *gorm.DB, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("session = ? AND menu_item_id = ? AND add_ons_key = ?",
		row.Session, row.MenuItemID, row.AddOnsKey).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(row).Error
}

// UpdateQty sets the line's quantity; qty <= 0 is a removal signal, not an
// error. Returns whether the line was removed.
func (r *CartRepository) UpdateQty(tx *gorm.DB, lineID uint, qty int) (bool, error) {
	var item entity.CartItem
	if err := tx.First(&item, lineID).Error; err != nil {
		return false, err
	}
	if qty <= 0 {
		return true, tx.Delete(&item).Error
	}
	item.Qty = qty
	return false, tx.Save(&item).Error
}

func (r *CartRepository) RemoveLine(tx *gorm.DB, lineID uint) error {
	res := tx.Delete(&entity.CartItem{}, lineID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) ClearSession(tx *gorm.DB, session string) error {
	return tx.Where("session = ?", session).Delete(&entity.CartItem{}).Error
}
