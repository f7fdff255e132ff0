package slots

import (
	"context"
	"net/http"
	"testing"
	"time"

	journalRepo "mindbloom/database/repository/journal"
	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/backend/backendtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Replacer, *backendtest.Server, journalRepo.JournalRepository) {
	t.Helper()
	srv := backendtest.New(t)
	journal := journalRepo.NewMemoryJournalRepo()
	api := backend.NewAvailability(backend.NewClient(srv.URL, time.Second))
	return NewReplacer(api, journal), srv, journal
}

var sess = &models.Session{ID: "s", Token: backendtest.Token}

const slotsPath = "/api/consultants/9/availability"

func TestReplaceIsFullReplacement(t *testing.T) {
	r, srv, _ := setup(t)
	ctx := context.Background()

	_, err := r.Replace(ctx, sess, 9, []models.SlotDraft{{Date: "2024-02-01", Time: "09:00", EndTime: "10:00"}})
	require.NoError(t, err)
	require.Len(t, srv.Records(slotsPath), 1)

	loaded, err := r.Load(ctx, sess, 9)
	require.NoError(t, err)
	assert.Equal(t, []models.SlotDraft{{Date: "2024-02-01", Time: "09:00", EndTime: "10:00"}}, loaded)

	edited := models.RemoveAt(loaded, 0)
	edited = models.Append(edited, models.SlotDraft{Date: "2024-02-02", Time: "14:00"})
	entry, err := r.Replace(ctx, sess, 9, edited)
	require.NoError(t, err)
	assert.Equal(t, models.ReplaceDone, entry.Status)
	assert.Equal(t, 1, entry.Deleted)
	assert.Equal(t, 1, entry.Created)

	records := srv.Records(slotsPath)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-02-02", records[0]["date"])
	assert.Equal(t, "14:00", records[0]["start_time"])
}

func TestReplaceSkipsIncompleteDrafts(t *testing.T) {
	r, srv, _ := setup(t)

	entry, err := r.Replace(context.Background(), sess, 9, []models.SlotDraft{
		{Date: "2024-02-01"},
		{Time: "09:00"},
		{Date: "2024-02-03", Time: "08:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Created)
	assert.Len(t, srv.Records(slotsPath), 1)
}

func TestReplaceFailsFastAndRetries(t *testing.T) {
	r, srv, journal := setup(t)
	ctx := context.Background()
	srv.Seed(slotsPath,
		map[string]any{"date": "2024-02-01", "start_time": "09:00"},
		map[string]any{"date": "2024-02-01", "start_time": "10:00"},
	)
	drafts := []models.SlotDraft{{Date: "2024-03-01", Time: "09:00"}, {Date: "2024-03-02", Time: "09:00"}}

	srv.FailAfter(http.MethodDelete, slotsPath, 1, http.StatusInternalServerError)
	entry, err := r.Replace(ctx, sess, 9, drafts)

	var replaceErr *ReplaceError
	require.ErrorAs(t, err, &replaceErr)
	assert.Equal(t, models.PhaseDeleting, replaceErr.Phase)
	assert.Equal(t, 1, replaceErr.Deleted)
	assert.Zero(t, replaceErr.Created)
	assert.Equal(t, 0, srv.Count(http.MethodPost, slotsPath))
	assert.Len(t, srv.Records(slotsPath), 1)

	stored, err := journal.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReplaceFailed, stored.Status)
	assert.NotEmpty(t, stored.Error)

	retried, err := r.Retry(ctx, sess, 9)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, retried.ID)
	assert.Equal(t, 2, retried.Attempts)
	assert.Equal(t, models.ReplaceDone, retried.Status)

	records := srv.Records(slotsPath)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-03-01", records[0]["date"])
	assert.Equal(t, "2024-03-02", records[1]["date"])

	_, err = r.Retry(ctx, sess, 9)
	assert.ErrorIs(t, err, ErrNothingToRetry)
}

func TestRetryAfterNewerSuccessIsRefused(t *testing.T) {
	r, srv, journal := setup(t)
	ctx := context.Background()
	clock := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	srv.FailAfter(http.MethodPost, slotsPath, 0, http.StatusInternalServerError)
	_, err := r.Replace(ctx, sess, 9, []models.SlotDraft{{Date: "2024-03-01", Time: "09:00"}})
	var replaceErr *ReplaceError
	require.ErrorAs(t, err, &replaceErr)
	assert.Equal(t, models.PhaseCreating, replaceErr.Phase)

	newer, err := r.Replace(ctx, sess, 9, []models.SlotDraft{{Date: "2024-04-04", Time: "14:00"}})
	require.NoError(t, err)
	assert.Equal(t, models.ReplaceDone, newer.Status)

	_, err = r.Retry(ctx, sess, 9)
	assert.ErrorIs(t, err, ErrNothingToRetry)

	records := srv.Records(slotsPath)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-04-04", records[0]["date"])
	assert.Equal(t, "14:00", records[0]["start_time"])

	history, err := journal.ListByConsultant(ctx, 9)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].ID)
	assert.Equal(t, models.ReplaceFailed, history[1].Status)
}

func TestReplaceCreateFailureIsReported(t *testing.T) {
	r, srv, _ := setup(t)
	srv.FailAfter(http.MethodPost, slotsPath, 1, http.StatusBadGateway)

	_, err := r.Replace(context.Background(), sess, 9, []models.SlotDraft{
		{Date: "2024-03-01", Time: "09:00"},
		{Date: "2024-03-02", Time: "09:00"},
		{Date: "2024-03-03", Time: "09:00"},
	})

	var replaceErr *ReplaceError
	require.ErrorAs(t, err, &replaceErr)
	assert.Equal(t, models.PhaseCreating, replaceErr.Phase)
	assert.Equal(t, 1, replaceErr.Created)
	assert.Equal(t, 2, srv.Count(http.MethodPost, slotsPath))

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}
