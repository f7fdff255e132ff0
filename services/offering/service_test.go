package offering

import (
	"context"
	"net/http"
	"testing"
	"time"

	"mindbloom/models"
	"mindbloom/services/availability"
	"mindbloom/services/backend"
	"mindbloom/services/backend/backendtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sess = &models.Session{Token: backendtest.Token}

func newService(t *testing.T) (*Service, *backendtest.Server) {
	t.Helper()
	srv := backendtest.New(t)
	client := backend.NewClient(srv.URL, time.Second)
	deriver := &availability.Deriver{Now: func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }, Days: 5}
	return NewService(backend.NewMultipartResource[models.Service](client, "/api/services"), backend.NewAvailability(client), deriver), srv
}

func TestBookingOptions(t *testing.T) {
	s, srv := newService(t)
	srv.Seed("/api/consultants/1/availability", map[string]any{"date": "2024-01-01", "start_time": "09:00", "end_time": "10:00"})
	srv.Seed("/api/consultants/2/availability", map[string]any{"date": "2024-01-01", "start_time": "11:00"})

	opts, err := s.BookingOptions(context.Background(), sess, []int64{1, 2}, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01"}, opts.AvailableDates)
	assert.Equal(t, []string{"9:00AM - 10:00AM", "11:00AM"}, opts.TimeOptions)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}, opts.BlockedDates)
}

func TestCreateSendsActiveVariantOnly(t *testing.T) {
	s, _ := newService(t)
	form := models.NewServiceForm()
	form.Name = "Screening"
	form.SetType(models.ServiceTest)
	form.Test = models.TestDetails{TestType: models.TestOnline, RedirectURL: "https://tests.example.test"}
	form.Appointment.AppointmentType = "group"

	list, err := s.Create(context.Background(), sess, form)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.ServiceTest, list[0].ServiceType)
	assert.Equal(t, "https://tests.example.test", list[0].RedirectURL)
	assert.Empty(t, list[0].AppointmentType)
	assert.Equal(t, []int64{}, list[0].ConsultantIDs)
}

func TestInvalidServiceNeverReachesBackend(t *testing.T) {
	s, srv := newService(t)
	form := models.NewServiceForm()
	form.Name = "Talk"

	_, err := s.Create(context.Background(), sess, form)
	require.Error(t, err)
	assert.Equal(t, 0, srv.Count(http.MethodPost, "/api/services"))
}
