package repository

import (
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("category, id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) FindByCategory(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category = ?", category).Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindFeatured() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_featured = ?", true).Order("id").Find(&items).Error
	return items, err
}
