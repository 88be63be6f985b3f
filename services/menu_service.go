package services

import (
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) ListByCategory(category string) ([]entity.MenuItem, error) {
	return s.Repo.FindByCategory(category)
}

func (s *MenuService) ListFeatured() ([]entity.MenuItem, error) {
	return s.Repo.FindFeatured()
}
