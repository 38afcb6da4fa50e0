package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasandree/hits-docker-practice/entity"
	"github.com/vasandree/hits-docker-practice/pkg/resp"
	"github.com/vasandree/hits-docker-practice/services"
)

// OrdersManagementController serves the operator worklist; its routes are
// admin-guarded.
type OrdersManagementController struct{ Svc *services.OrderService }

func NewOrdersManagementController(svc *services.OrderService) *OrdersManagementController {
	return &OrdersManagementController{Svc: svc}
}

// GET /management/orders — every order, worklist-ranked
func (h *OrdersManagementController) Index(c *gin.Context) {
	views, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, views)
}

type editOrderReq struct {
	Status       string    `json:"status" binding:"required"`
	DeliveryTime time.Time `json:"deliveryTime" binding:"required"`
}

// PATCH /management/orders/:id
func (h *OrdersManagementController) Edit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "malformed order id")
		return
	}

	var req editOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		resp.BadRequest(c, "unknown status")
		return
	}

	if err := h.Svc.Edit(c.Request.Context(), uint(id), status, req.DeliveryTime); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidArgument):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"id": id})
}
