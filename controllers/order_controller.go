package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasandree/hits-docker-practice/pkg/resp"
	"github.com/vasandree/hits-docker-practice/services"
	"github.com/vasandree/hits-docker-practice/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /orders/create — everything the order form needs
func (h *OrderController) CreateView(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	view, err := h.Svc.GetCreateOrderView(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

type createOrderReq struct {
	Address      string    `json:"address" binding:"required"`
	DeliveryTime time.Time `json:"deliveryTime" binding:"required"`
}

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := h.Svc.Create(c.Request.Context(), uid, req.Address, req.DeliveryTime)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "menu item no longer available")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"id": id})
}

// GET /orders/:id
func (h *OrderController) Info(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "malformed order id")
		return
	}

	view, err := h.Svc.GetInfo(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /orders — the caller's past orders, newest first
func (h *OrderController) Past(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	view, err := h.Svc.GetPastOrders(c.Request.Context(), uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}
