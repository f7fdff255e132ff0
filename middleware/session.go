package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"mindbloom/models"
	"mindbloom/services/session"
	"mindbloom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// SessionHeader carries the gateway session id.
	SessionHeader = "X-Session-ID"

	sessionKey = "session"
)

// SessionResolver looks up a live session by id.
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (*models.Session, error)
}

// SessionID reads the session id from X-Session-ID or "Authorization: Session <id>".
func SessionID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(SessionHeader)); id != "" {
		return id
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Session ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Session "))
	}
	return ""
}

// SessionAuth rejects requests without a live session and stores it on the context.
func SessionAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := SessionID(c)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session"})
			return
		}

		sess, err := resolver.Resolve(c.Request.Context(), id)
		if errors.Is(err, session.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		if err != nil {
			utils.GetLogger().Error("Session lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session store unavailable"})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session stored by SessionAuth.
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}

// RequireSuperAdmin limits a route group to superadmin sessions.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).IsSuperAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Superadmin access required"})
			return
		}
		c.Next()
	}
}
