package handlers

import (
	"fmt"
	"net/http"

	"travelbackend/internal/http/middleware"
	"travelbackend/internal/services"
	"travelbackend/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the admin user directory.
type UserHandler struct {
	Service services.AuthService
}

// GET /api/users
func (h UserHandler) List(c *gin.Context) {
	users, err := h.Service.ListUsers()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// GET /api/users/:id
func (h UserHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	user, err := h.Service.GetUser(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// PUT /api/users/:id/password
func (h UserHandler) ResetPassword(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req resetPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Service.AdminResetPassword(id, req.NewPassword)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "users", "reset_password", fmt.Sprintf("user_id=%d", user.ID))
	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}
