package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/pkg/resp"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/services"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/utils"
)

type CartController struct {
	Svc      *services.CartService
	OrderSvc *services.OrderService
}

func NewCartController(s *services.CartService, os *services.OrderService) *CartController {
	return &CartController{Svc: s, OrderSvc: os}
}

// GET /cart/:session
func (h *CartController) Get(c *gin.Context) {
	session := utils.SessionKey(c)
	if session == "" {
		resp.BadRequest(c, "session is required")
		return
	}
	items, breakdown, subtotal, err := h.Svc.Get(session)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.List(c, "cart", gin.H{
		"items":     items,
		"breakdown": breakdown,
		"subtotal":  subtotal,
	}, int64(len(items)))
}

// POST /cart
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.Add(&req)
	if err != nil {
		var miss *services.MissingMenuItemError
		switch {
		case errors.As(err, &miss):
			resp.NotFound(c, miss.Error())
		case errors.Is(err, services.ErrAddOnsNotAllowed):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, "added to cart", line)
}

// PUT /cart/:lineId  body: {"qty": n}; qty <= 0 removes the line
func (h *CartController) UpdateQty(c *gin.Context) {
	lineID, err := strconv.Atoi(c.Param("lineId"))
	if err != nil || lineID <= 0 {
		resp.BadRequest(c, "invalid cart line id")
		return
	}
	var body struct {
		Qty *int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	removed, err := h.Svc.UpdateQty(uint(lineID), *body.Qty)
	if err != nil {
		if errors.Is(err, services.ErrLineNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	if removed {
		resp.OK(c, "line removed", nil)
		return
	}
	resp.OK(c, "quantity updated", gin.H{"lineId": lineID, "qty": *body.Qty})
}

// DELETE /cart/item/:lineId
func (h *CartController) RemoveLine(c *gin.Context) {
	lineID, err := strconv.Atoi(c.Param("lineId"))
	if err != nil || lineID <= 0 {
		resp.BadRequest(c, "invalid cart line id")
		return
	}
	if err := h.Svc.RemoveLine(uint(lineID)); err != nil {
		if errors.Is(err, services.ErrLineNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "line removed", nil)
}

// DELETE /cart/:session
func (h *CartController) Clear(c *gin.Context) {
	session := utils.SessionKey(c)
	if session == "" {
		resp.BadRequest(c, "session is required")
		return
	}
	if err := h.Svc.Clear(session); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "cart cleared", nil)
}

// POST /cart/:session/checkout
func (h *CartController) Checkout(c *gin.Context) {
	session := utils.SessionKey(c)
	if session == "" {
		resp.BadRequest(c, "session is required")
		return
	}
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.OrderSvc.CheckoutFromCart(session, &req)
	if err != nil {
		var miss *services.MissingMenuItemError
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, err.Error())
		case errors.As(err, &miss):
			resp.BadRequest(c, miss.Error())
		case errors.Is(err, services.ErrOrderNumbersExhausted):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, "order placed", order)
}
