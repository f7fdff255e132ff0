package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceFormKeepsGroupsAcrossTypeSwitch(t *testing.T) {
	f := NewServiceForm()
	f.Name = "Screening"
	f.Appointment.AppointmentType = "one_on_one"
	f.ConsultantIDs = []int64{1}

	f.SetType(ServiceTest)
	f.Test = TestDetails{TestType: TestOnline, RedirectURL: "https://tests.example.test"}
	f.SetType(ServiceAppointment)

	assert.Equal(t, "one_on_one", f.Appointment.AppointmentType)
	assert.Equal(t, "https://tests.example.test", f.Test.RedirectURL)
	require.NoError(t, f.Validate())
}

func TestServicePayloadOnlyCarriesActiveGroup(t *testing.T) {
	f := NewServiceForm()
	f.Name = "Mindful Month"
	f.Type = ServiceSubscription
	f.Subscription = SubscriptionDetails{Price: 49, BillingCycle: "monthly", StartDate: "2024-01-01", EndDate: "2024-02-01"}
	f.Appointment.AppointmentType = "group"
	f.Event.Date = "2024-01-10"

	require.NoError(t, f.Validate())
	p := f.Payload()
	assert.Equal(t, ServiceSubscription, p.ServiceType)
	assert.Equal(t, 49.0, p.Price)
	assert.Empty(t, p.AppointmentType)
	assert.Empty(t, p.EventDate)
	assert.NotNil(t, p.ConsultantIDs)
}

func TestServiceTestSubtype(t *testing.T) {
	f := NewServiceForm()
	f.Name = "Aptitude"
	f.Type = ServiceTest
	f.Test = TestDetails{TestType: TestOffline, RedirectURL: "https://ignored.example.test"}

	err := f.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "center_address", verr.Field)

	f.Test.CenterAddress = "12 Lake Road"
	require.NoError(t, f.Validate())
	p := f.Payload()
	assert.Equal(t, "12 Lake Road", p.CenterAddress)
	assert.Empty(t, p.RedirectURL)
}

func TestServiceSuggestionCap(t *testing.T) {
	f := NewServiceForm()
	for i := 0; i < MaxSuggestions; i++ {
		assert.True(t, f.AddSuggestion(Suggestion{Title: "s"}))
	}
	assert.False(t, f.CanAddSuggestion())
	assert.False(t, f.AddSuggestion(Suggestion{Title: "extra"}))
	assert.Len(t, f.Suggestions, MaxSuggestions)

	f.RemoveSuggestion(0)
	assert.True(t, f.CanAddSuggestion())
}

func TestServiceAppointmentNeedsConsultant(t *testing.T) {
	f := NewServiceForm()
	f.Name = "Talk"
	f.Appointment.AppointmentType = "one_on_one"

	var verr *ValidationError
	require.ErrorAs(t, f.Validate(), &verr)
	assert.Equal(t, "consultant_ids", verr.Field)
}

func TestServiceFormFromRecord(t *testing.T) {
	record := Service{ID: 4, Name: "Open day", ServiceType: ServiceEvent, EventDate: "2024-03-01", EventStartTime: "10:00", DeliveryMode: DeliveryOffline}
	f := ServiceFormFromRecord(record)

	assert.Equal(t, ServiceEvent, f.Type)
	assert.Equal(t, "2024-03-01", f.Event.Date)
	assert.Equal(t, DeliveryOffline, f.DeliveryMode)
	assert.Equal(t, record.EventDate, f.Payload().EventDate)
}
