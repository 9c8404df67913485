package handlers

import (
	"net/http"

	"becak/internal/http/middleware"
	"becak/internal/services"
	"becak/internal/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, user, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondOpError(c, services.OpLogin, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "role="+user.Role)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.ToPublic(),
	})
}
