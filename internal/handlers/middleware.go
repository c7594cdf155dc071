package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	sessionHeader  = "X-Session-ID"
	sessionKey     = "sessionID"
	defaultSession = "default"
)

// SessionMiddleware reads the caller's session id from the X-Session-ID
// header. Clients that send nothing share the default demo session.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := strings.TrimSpace(c.GetHeader(sessionHeader))
		if session == "" {
			session = defaultSession
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionID extracts the session id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return defaultSession
}
