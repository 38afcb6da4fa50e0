package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/entity"
	"github.com/vasandree/hits-docker-practice/pkg/resp"
	"github.com/vasandree/hits-docker-practice/repository"
)

type MenuController struct{ Repo *repository.MenuRepository }

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /menu?category=Drink&category=Dish&vegan=true
func (h *MenuController) List(c *gin.Context) {
	var categories []entity.MenuItemCategory
	for _, v := range c.QueryArray("category") {
		categories = append(categories, entity.MenuItemCategory(v))
	}
	var vegan *bool
	if v := c.Query("vegan"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "vegan must be a boolean")
			return
		}
		vegan = &b
	}

	items, err := h.Repo.List(c.Request.Context(), categories, vegan)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "malformed menu item id")
		return
	}

	item, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

type createMenuItemReq struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=Drink Dish Dessert"`
	Description string          `json:"description"`
	IsVegan     bool            `json:"isVegan"`
	PhotoPath   string          `json:"photoPath"`
}

// POST /management/menu (admin)
func (h *MenuController) Create(c *gin.Context) {
	var req createMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price.IsNegative() {
		resp.BadRequest(c, "price must not be negative")
		return
	}

	if _, err := h.Repo.GetByName(c.Request.Context(), req.Name); err == nil {
		resp.BadRequest(c, "menu item with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    entity.MenuItemCategory(req.Category),
		Description: req.Description,
		IsVegan:     req.IsVegan,
		PhotoPath:   req.PhotoPath,
	}
	if err := h.Repo.Create(c.Request.Context(), &item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// DELETE /management/menu/:id (admin, soft delete)
func (h *MenuController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "malformed menu item id")
		return
	}

	if err := h.Repo.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
