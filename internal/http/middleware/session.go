package middleware

import (
	"net/http"
	"time"

	"becak/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "sid"
	sessionKey    = "session"
)

// Session attaches the caller's session, creating one (and its cookie) when
// the cookie is missing or expired.
func Session(reg *session.Registry, ttl time.Duration) gin.HandlerFunc {
	maxAge := int(ttl / time.Second)
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookie)
		s, created := reg.GetOrCreate(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, s.ID, maxAge, "/", "", false, true)
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// GetSession returns the session attached by Session.
func GetSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
