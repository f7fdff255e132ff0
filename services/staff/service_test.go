package staff

import (
	"context"
	"testing"
	"time"

	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/backend/backendtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sess = &models.Session{Token: backendtest.Token}

func TestUserLifecycle(t *testing.T) {
	srv := backendtest.New(t)
	s := NewService(backend.NewResource[models.StaffUser](backend.NewClient(srv.URL, time.Second), "/api/users"))
	ctx := context.Background()

	_, err := s.Create(ctx, sess, models.StaffUser{Username: "mira", Role: models.RoleConsultant})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)

	list, err := s.Create(ctx, sess, models.StaffUser{Username: "mira", Password: "pw", Role: models.RoleConsultant})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Password)
	assert.Equal(t, models.UserActive, list[0].Status)

	list, err = s.Update(ctx, sess, list[0].ID, models.StaffUser{Username: "mira.k", Role: models.RoleSuperAdmin, Status: models.UserActive})
	require.NoError(t, err)
	assert.Equal(t, "mira.k", list[0].Username)
	assert.Equal(t, "pw", srv.Records("/api/users")[0]["password"])

	list, err = s.ToggleStatus(ctx, sess, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserInactive, list[0].Status)
}
