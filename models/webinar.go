package models

const (
	WebinarScheduled = "scheduled"
	WebinarLive      = "live"
	WebinarEnded     = "ended"
	WebinarCancelled = "cancelled"
)

type Webinar struct {
	ID                    int64    `json:"id,omitempty"`
	Title                 string   `json:"title" binding:"required"`
	Description           string   `json:"description,omitempty"`
	StartTime             string   `json:"start_time" binding:"required"`
	EndTime               string   `json:"end_time"`
	DurationMinutes       int      `json:"duration_minutes"`
	MaxAttendees          int      `json:"max_attendees,omitempty"`
	Price                 float64  `json:"price"`
	IsFree                bool     `json:"is_free"`
	Status                string   `json:"status"`
	GoogleMeetLink        string   `json:"google_meet_link,omitempty"`
	GoogleCalendarEventID string   `json:"google_calendar_event_id,omitempty"`
	AttendeeEmails        []string `json:"attendee_emails"`
}

// Normalize recomputes the derived fields before a submit.
func (w *Webinar) Normalize() {
	w.DurationMinutes = DurationMinutes(w.StartTime, w.EndTime)
	if w.IsFree {
		w.Price = 0
	}
	if w.Status == "" {
		w.Status = WebinarScheduled
	}
	if w.AttendeeEmails == nil {
		w.AttendeeEmails = []string{}
	}
}

func (w Webinar) Validate() error {
	if err := CheckBinding(w); err != nil {
		return err
	}
	switch w.Status {
	case "", WebinarScheduled, WebinarLive, WebinarEnded, WebinarCancelled:
	default:
		return invalid("status", "status must be scheduled, live, ended or cancelled")
	}
	if w.MaxAttendees < 0 {
		return invalid("max_attendees", "max_attendees cannot be negative")
	}
	return nil
}
