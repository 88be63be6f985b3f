package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/pkg/resp"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/services"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.List(c, "menu", items, int64(len(items)))
}

// GET /menu/:id
func (h *MenuController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	item, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "menu item", item)
}

// GET /menu/category/:c
func (h *MenuController) ListByCategory(c *gin.Context) {
	items, err := h.Svc.ListByCategory(c.Param("c"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.List(c, "menu by category", items, int64(len(items)))
}

// GET /menu/featured
func (h *MenuController) ListFeatured(c *gin.Context) {
	items, err := h.Svc.ListFeatured()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.List(c, "featured menu", items, int64(len(items)))
}
