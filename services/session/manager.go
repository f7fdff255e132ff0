package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidToken is returned when the backend does not accept the token.
var ErrInvalidToken = errors.New("token rejected")

// ProfileFetcher looks up the holder of a session's token.
type ProfileFetcher interface {
	Profile(ctx context.Context, sess *models.Session) (models.Profile, error)
}

// Manager opens, resolves and closes operator sessions.
type Manager struct {
	store    *Store
	profiles ProfileFetcher
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(store *Store, profiles ProfileFetcher, ttl time.Duration) *Manager {
	return &Manager{store: store, profiles: profiles, ttl: ttl, now: time.Now}
}

// Open validates token against the backend and stores a new session for it.
// The session never outlives the token's exp claim.
func (m *Manager) Open(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	now := m.now()

	claims, err := utils.InspectToken(token, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sess := &models.Session{
		ID:        uuid.New().String(),
		Token:     token,
		Subject:   claims.Subject,
		Role:      claims.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(sess.ExpiresAt) {
		sess.ExpiresAt = claims.ExpiresAt
	}

	profile, err := m.profiles.Profile(ctx, sess)
	if errors.Is(err, backend.ErrUnauthorized) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	sess.Username = profile.Username
	if profile.Role != "" {
		sess.Role = profile.Role
	}
	if sess.Subject == "" && profile.ID != 0 {
		sess.Subject = strconv.FormatInt(profile.ID, 10)
	}

	if err := m.store.Save(ctx, *sess, now); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Operator session opened",
		zap.String("session", sess.ID), zap.String("username", sess.Username), zap.String("role", sess.Role))
	return sess, nil
}

// Resolve returns the live session for id.
func (m *Manager) Resolve(ctx context.Context, id string) (*models.Session, error) {
	return m.store.Get(ctx, id)
}

// Close removes the session. Closing an unknown session is not an error.
func (m *Manager) Close(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}
