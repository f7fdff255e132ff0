package models

const (
	ConsultationScheduled = "scheduled"
	ConsultationConfirmed = "confirmed"
	ConsultationCompleted = "completed"
	ConsultationCancelled = "cancelled"
	ConsultationNoShow    = "no_show"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

type Consultation struct {
	ID              int64    `json:"id,omitempty"`
	ConsultantID    int64    `json:"consultant_id" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	StartTime       string   `json:"start_time" binding:"required"`
	EndTime         string   `json:"end_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           float64  `json:"price"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"payment_status"`
	GoogleMeetLink  string   `json:"google_meet_link,omitempty"`
	AttendeeEmails  []string `json:"attendee_emails" binding:"dive,email"`
}

// Normalize recomputes the derived fields before a submit.
func (c *Consultation) Normalize() {
	c.DurationMinutes = DurationMinutes(c.StartTime, c.EndTime)
	if c.Status == "" {
		c.Status = ConsultationScheduled
	}
	if c.PaymentStatus == "" {
		c.PaymentStatus = PaymentPending
	}
	if c.AttendeeEmails == nil {
		c.AttendeeEmails = []string{}
	}
}

func (c Consultation) Validate() error {
	if err := CheckBinding(c); err != nil {
		return err
	}
	switch c.Status {
	case "", ConsultationScheduled, ConsultationConfirmed, ConsultationCompleted, ConsultationCancelled, ConsultationNoShow:
	default:
		return invalid("status", "unknown consultation status")
	}
	switch c.PaymentStatus {
	case "", PaymentPending, PaymentPaid, PaymentRefunded:
	default:
		return invalid("payment_status", "payment_status must be pending, paid or refunded")
	}
	return nil
}
