package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/pkg/resp"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/services"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /order  (?status= filters)
func (h *OrderController) List(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	orders, total, err := h.Svc.List(status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.List(c, "orders", orders, total)
}

// GET /order/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "order", order)
}

// POST /order — direct creation bypassing the cart
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Create(&req)
	if err != nil {
		var miss *services.MissingMenuItemError
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, "items is required")
		case errors.As(err, &miss):
			resp.BadRequest(c, miss.Error())
		case errors.Is(err, services.ErrOrderNumbersExhausted):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, "order created", order)
}

// PUT /order/:id/status  body: {"status": label}
func (h *OrderController) SetStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetStatus(uint(id), body.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrIllegalTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, "status updated", gin.H{"id": id, "status": body.Status})
}
