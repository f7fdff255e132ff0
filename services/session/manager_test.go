package session

import (
	"context"
	"testing"
	"time"

	"mindbloom/models"
	"mindbloom/services/backend"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfiles struct {
	profile models.Profile
	err     error
	tokens  []string
}

func (s *stubProfiles) Profile(_ context.Context, sess *models.Session) (models.Profile, error) {
	s.tokens = append(s.tokens, sess.Token)
	return s.profile, s.err
}

func newManager(t *testing.T, profiles ProfileFetcher) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewManager(NewStore(client), profiles, time.Hour), mr
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42", "role": "consultant", "exp": exp.Unix()})
	s, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestOpenResolveClose(t *testing.T) {
	profiles := &stubProfiles{profile: models.Profile{ID: 7, Username: "admin", Role: models.RoleSuperAdmin}}
	m, mr := newManager(t, profiles)
	ctx := context.Background()

	sess, err := m.Open(ctx, "opaque-token")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "7", sess.Subject)
	assert.True(t, sess.IsSuperAdmin())
	assert.Equal(t, []string{"opaque-token"}, profiles.tokens)

	got, err := m.Resolve(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", got.Token)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+sess.ID))

	require.NoError(t, m.Close(ctx, sess.ID))
	_, err = m.Resolve(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionExpiresWithToken(t *testing.T) {
	m, mr := newManager(t, &stubProfiles{profile: models.Profile{Username: "c1"}})
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	sess, err := m.Open(context.Background(), signed(t, now.Add(10*time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, "42", sess.Subject)
	assert.Equal(t, models.RoleConsultant, sess.Role)
	assert.Equal(t, 10*time.Minute, mr.TTL(keyPrefix+sess.ID))

	mr.FastForward(11 * time.Minute)
	_, err = m.Resolve(context.Background(), sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenRejectsBadTokens(t *testing.T) {
	m, _ := newManager(t, &stubProfiles{err: backend.ErrUnauthorized})

	_, err := m.Open(context.Background(), "opaque")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Open(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	m2, _ := newManager(t, &stubProfiles{})
	_, err = m2.Open(context.Background(), signed(t, time.Now().Add(-time.Minute)))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
