package handlers

import (
	"net/http"

	"travelbackend/internal/http/middleware"
	"travelbackend/internal/services"
	"travelbackend/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service services.AuthService
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Service.Register(services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "username="+user.Username)
	c.JSON(http.StatusCreated, gin.H{"user": userJSON(user)})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, token, exp, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "username="+user.Username)
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": exp,
		"user":       userJSON(user),
	})
}

// GET /api/auth/me
func (h AuthHandler) Me(c *gin.Context) {
	user, err := h.Service.GetUser(middleware.AuthUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// PUT /api/auth/password
func (h AuthHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Service.UpdatePassword(middleware.AuthUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "update_password", "username="+user.Username)
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
