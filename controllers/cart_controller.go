package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vasandree/hits-docker-practice/pkg/resp"
	"github.com/vasandree/hits-docker-practice/services"
	"github.com/vasandree/hits-docker-practice/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	view, err := h.Svc.Get(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu item no longer available")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

type addItemReq struct {
	MenuItemID uuid.UUID `json:"menuItemId" binding:"required"`
	Amount     int       `json:"amount" binding:"required"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.AddItem(c.Request.Context(), uid, req.MenuItemID, req.Amount); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			resp.BadRequest(c, "amount must be positive")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "menu item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"itemCount": h.Svc.ItemCount(uid)})
}

// DELETE /cart/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		resp.BadRequest(c, "malformed item id")
		return
	}

	h.Svc.RemoveItem(uid, itemID)
	resp.OK(c, gin.H{"itemCount": h.Svc.ItemCount(uid)})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	h.Svc.Clear(uid)
	resp.OK(c, gin.H{"itemCount": 0})
}
