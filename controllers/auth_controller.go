package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/pkg/resp"
	"github.com/vasandree/hits-docker-practice/repository"
	"github.com/vasandree/hits-docker-practice/services"
	"github.com/vasandree/hits-docker-practice/utils"
)

type AuthController struct {
	Svc   *services.AuthService
	Users *repository.UserRepository
}

func NewAuthController(svc *services.AuthService, users *repository.UserRepository) *AuthController {
	return &AuthController{Svc: svc, Users: users}
}

type registerReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	BirthDate   string `json:"birthDate" binding:"required"` // 2006-01-02
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		resp.BadRequest(c, "birthDate must be YYYY-MM-DD")
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.FullName, req.PhoneNumber, birthDate)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	user, err := h.Users.GetByID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
