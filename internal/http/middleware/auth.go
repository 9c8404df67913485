package middleware

import (
	"net/http"
	"strings"

	"becak/internal/apiclient"
	"becak/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	userRoleKey = "userRole"
	userIDKey   = "userID"
)

// TokenParser validates bearer tokens.
type TokenParser interface {
	ParseToken(raw string) (services.Claims, error)
}

// ForwardToken passes the caller's bearer token on to backend calls made
// with the request context. It never rejects a request.
func ForwardToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := bearer(c); tok != "" {
			c.Request = c.Request.WithContext(apiclient.WithToken(c.Request.Context(), tok))
		}
		c.Next()
	}
}

// AuthRequired rejects requests without a valid token and stores the
// caller's role for RequireRoles.
func AuthRequired(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := p.ParseToken(bearer(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "unauthorized",
				"message":    "Sesi Anda telah berakhir. Silakan login kembali.",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(userRoleKey, claims.Role)
		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func bearer(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
