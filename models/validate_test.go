package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingTagsReportJSONField(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		field string
	}{
		{"category", Category{}.Validate(), "name"},
		{"subcategory", Subcategory{CategoryID: 1}.Validate([]Category{{ID: 1, Name: "Therapy"}}), "name"},
		{"blog", Blog{Title: "Sleep", Category: "Wellness"}.Validate(), "description"},
		{"webinar", Webinar{Title: "Calm"}.Validate(), "start_time"},
		{"user", StaffUser{Role: RoleConsultant}.Validate(false), "username"},
		{"consultation", Consultation{Title: "Intro", StartTime: "2024-01-01T10:00"}.Validate(), "consultant_id"},
		{"consultant", ConsultantForm{Consultant: Consultant{Username: "asha", Email: "a@gmail.com"}}.Validate(NewEmailRule("gmail.com")), "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var verr *ValidationError
			require.ErrorAs(t, tc.err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.field+" is required", verr.Message)
		})
	}
}

func TestEmailTagRejectsMalformedAddresses(t *testing.T) {
	req := BookingRequest{Name: "Sam", Email: "sam@example.com", Phone: "555", ConsultantID: "1", Date: "2026-10-20", Time: "10:00"}
	require.NoError(t, CheckBinding(req))

	for _, email := range []string{"a@", "@b", "x y@z"} {
		req.Email = email
		var verr *ValidationError
		require.ErrorAs(t, CheckBinding(req), &verr, email)
		assert.Equal(t, "email", verr.Field)
	}
}

func TestAttendeeEmailsAreChecked(t *testing.T) {
	c := Consultation{ConsultantID: 1, Title: "Intro", StartTime: "2024-01-01T10:00", AttendeeEmails: []string{"a@example.test", "nobody"}}

	var verr *ValidationError
	require.ErrorAs(t, c.Validate(), &verr)
	assert.Equal(t, "attendee_emails[1]", verr.Field)
	assert.Equal(t, "a valid email is required", verr.Message)
}

func TestFieldErrorPassesOtherErrors(t *testing.T) {
	plain := errors.New("unexpected EOF")
	assert.Same(t, plain, FieldError(plain))
	assert.NoError(t, FieldError(nil))
}
