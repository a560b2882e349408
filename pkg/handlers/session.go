package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie     = "rb_session"
	sessionContextKey = "session_id"
	sessionMaxAge     = 60 * 60 * 24
)

// SessionMiddleware assigns every browser a session id cookie. The id keys
// the per-session chat transcript; nothing else is stored against it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

// sessionID returns the session id set by SessionMiddleware.
func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
