package handlers

import (
	"net/http"

	"becak/internal/http/middleware"
	"becak/internal/session"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}

// mustSession returns the caller's session or writes a 500 when the session
// middleware is missing from the chain.
func mustSession(c *gin.Context) (*session.Session, bool) {
	s := middleware.GetSession(c)
	if s == nil {
		RespondError(c, http.StatusInternalServerError, "sesi tidak tersedia", nil)
		return nil, false
	}
	return s, true
}
