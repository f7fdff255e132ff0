package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mindbloom/middleware"
	"mindbloom/models"
	"mindbloom/services/session"
	"mindbloom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionOpener exchanges a backend token for a gateway session.
type SessionOpener interface {
	Open(ctx context.Context, token string) (*models.Session, error)
	SessionCloser
}

type SessionHandler struct {
	Sessions SessionOpener
}

func NewSessionHandler(sessions SessionOpener) *SessionHandler {
	return &SessionHandler{Sessions: sessions}
}

// sessionView is what the console sees of a session; the token stays server side.
type sessionView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func viewOf(s *models.Session) sessionView {
	return sessionView{ID: s.ID, Username: s.Username, Role: s.Role, ExpiresAt: s.ExpiresAt}
}

// OpenSessionHandler validates the posted token and returns the new session id.
func (h *SessionHandler) OpenSessionHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}

	sess, err := h.Sessions.Open(c.Request.Context(), req.Token)
	if errors.Is(err, session.ErrInvalidToken) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	if err != nil {
		utils.GetLogger().Error("Failed to open session", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to open session", "message": err.Error()})
		return
	}

	c.Header(middleware.SessionHeader, sess.ID)
	c.JSON(http.StatusCreated, viewOf(sess))
}

func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, viewOf(sessionOf(c)))
}

func (h *SessionHandler) CloseSessionHandler(c *gin.Context) {
	if err := h.Sessions.Close(c.Request.Context(), sessionOf(c).ID); err != nil {
		utils.GetLogger().Error("Failed to close session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close session"})
		return
	}
	c.Status(http.StatusNoContent)
}
