package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/entity"
	"github.com/vasandree/hits-docker-practice/pkg/resp"
	"github.com/vasandree/hits-docker-practice/repository"
	"github.com/vasandree/hits-docker-practice/utils"
)

type AddressController struct{ Repo *repository.AddressRepository }

func NewAddressController(repo *repository.AddressRepository) *AddressController {
	return &AddressController{Repo: repo}
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	addrs, err := h.Repo.ListForUser(c.Request.Context(), uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addrs)
}

type addressReq struct {
	StreetName     string `json:"streetName" binding:"required"`
	HouseNumber    string `json:"houseNumber" binding:"required"`
	EntranceNumber string `json:"entranceNumber"`
	FlatNumber     string `json:"flatNumber" binding:"required"`
	Note           string `json:"note"`
	Name           string `json:"name" binding:"required"`
	IsMain         bool   `json:"isMain"`
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()

	// only one main address per user
	if req.IsMain {
		if err := h.Repo.ResetMain(ctx, uid); err != nil {
			resp.ServerError(c, err)
			return
		}
	} else {
		hasMain, err := h.Repo.HasMain(ctx, uid)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		// the first address a user adds becomes main
		if !hasMain {
			req.IsMain = true
		}
	}

	addr := entity.Address{
		StreetName:     req.StreetName,
		HouseNumber:    req.HouseNumber,
		EntranceNumber: req.EntranceNumber,
		FlatNumber:     req.FlatNumber,
		Note:           req.Note,
		Name:           req.Name,
		IsMain:         req.IsMain,
		UserID:         uid,
	}
	if err := h.Repo.Create(ctx, &addr); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, addr)
}

// PUT /addresses/:id
func (h *AddressController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "malformed address id")
		return
	}
	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()

	addr, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if addr.UserID != uid {
		resp.Forbidden(c, "forbidden")
		return
	}

	if req.IsMain && !addr.IsMain {
		if err := h.Repo.ResetMain(ctx, uid); err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	addr.StreetName = req.StreetName
	addr.HouseNumber = req.HouseNumber
	addr.EntranceNumber = req.EntranceNumber
	addr.FlatNumber = req.FlatNumber
	addr.Note = req.Note
	addr.Name = req.Name
	addr.IsMain = req.IsMain
	if err := h.Repo.Update(ctx, addr); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addr)
}

// DELETE /addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "malformed address id")
		return
	}
	ctx := c.Request.Context()

	addr, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if addr.UserID != uid {
		resp.Forbidden(c, "forbidden")
		return
	}

	wasMain := addr.IsMain
	if err := h.Repo.Delete(ctx, addr); err != nil {
		resp.ServerError(c, err)
		return
	}
	if wasMain {
		if err := h.Repo.PromoteFirstToMain(ctx, uid); err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	resp.OK(c, gin.H{"id": id})
}
