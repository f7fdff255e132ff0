package consultant

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	journalRepo "mindbloom/database/repository/journal"
	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/backend/backendtest"
	"mindbloom/services/slots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sess = &models.Session{Token: backendtest.Token}

func newService(t *testing.T) (*Service, *backendtest.Server) {
	t.Helper()
	srv := backendtest.New(t)
	client := backend.NewClient(srv.URL, time.Second)
	replacer := slots.NewReplacer(backend.NewAvailability(client), journalRepo.NewMemoryJournalRepo())
	return NewService(backend.NewMultipartResource[models.Consultant](client, "/api/consultants"), replacer, "gmail.com"), srv
}

func form() models.ConsultantForm {
	return models.ConsultantForm{
		Consultant:  models.Consultant{Name: "Asha Rao", Username: "asha", Email: "asha@gmail.com", Location: models.Location{Lat: 12.9, Lng: 77.6}},
		CategoryIDs: []string{"1", "2"},
		Slots:       []models.SlotDraft{{Date: "2024-02-01", Time: "09:00", EndTime: "10:00"}},
	}
}

func TestCreateThenEditReplacesSlots(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	list, err := s.Create(ctx, sess, form())
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID
	assert.Equal(t, []int64{1, 2}, list[0].CategoryIDs)
	assert.Equal(t, models.ConsultantOffline, list[0].Status)

	edit, err := s.EditForm(ctx, sess, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, edit.CategoryIDs)
	require.Len(t, edit.Slots, 1)

	edit.Slots = models.RemoveAt(edit.Slots, 0)
	edit.Slots = models.Append(edit.Slots, models.SlotDraft{Date: "2024-02-02", Time: "14:00"})
	_, err = s.Update(ctx, sess, id, edit)
	require.NoError(t, err)

	drafts, err := s.Availability(ctx, sess, id)
	require.NoError(t, err)
	assert.Equal(t, []models.SlotDraft{{Date: "2024-02-02", Time: "14:00"}}, drafts)
}

func TestCreateRejectsOtherEmailDomains(t *testing.T) {
	s, srv := newService(t)
	f := form()
	f.Email = "a@yahoo.com"

	_, err := s.Create(context.Background(), sess, f)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
	assert.Empty(t, srv.Requests())
}

func TestCreateSendsMultipartWithFiles(t *testing.T) {
	s, srv := newService(t)
	f := form()
	f.ImageFile = &models.Attachment{Field: "image", FileName: "asha.jpg", Content: strings.NewReader("jpg")}

	_, err := s.Create(context.Background(), sess, f)
	require.NoError(t, err)

	var create backendtest.Request
	for _, r := range srv.Requests() {
		if r.Method == http.MethodPost && r.Path == "/api/consultants" {
			create = r
		}
	}
	assert.True(t, strings.HasPrefix(create.ContentType, "multipart/form-data"))
	assert.Equal(t, "asha.jpg", create.Files["image"])
	assert.Equal(t, []any{float64(1), float64(2)}, create.Body["category_ids"])
}

func TestToggleStatus(t *testing.T) {
	s, srv := newService(t)
	ids := srv.Seed("/api/consultants", map[string]any{"name": "Asha", "status": "offline"})

	list, err := s.ToggleStatus(context.Background(), sess, ids[0])
	require.NoError(t, err)
	assert.Equal(t, models.ConsultantOnline, list[0].Status)

	list, err = s.ToggleStatus(context.Background(), sess, ids[0])
	require.NoError(t, err)
	assert.Equal(t, models.ConsultantOffline, list[0].Status)
}

func TestSlotFailureAfterCreateIsPartial(t *testing.T) {
	s, srv := newService(t)
	srv.FailAfter(http.MethodPost, "/api/consultants/", 0, http.StatusInternalServerError)

	_, err := s.Create(context.Background(), sess, form())
	var replaceErr *slots.ReplaceError
	require.ErrorAs(t, err, &replaceErr)
	assert.Equal(t, models.PhaseCreating, replaceErr.Phase)
	assert.Len(t, srv.Records("/api/consultants"), 1)

	entry, err := s.RetryAvailability(context.Background(), sess, srv.Records("/api/consultants")[0]["id"].(int64))
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Created)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	s, srv := newService(t)
	ids := srv.Seed("/api/consultants", map[string]any{"name": "Asha"})

	_, err := s.Delete(context.Background(), sess, ids[0], false)
	assert.ErrorIs(t, err, models.ErrConfirmationRequired)
	assert.Len(t, srv.Records("/api/consultants"), 1)
}
