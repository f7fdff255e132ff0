package consultation

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"mindbloom/models"
	"mindbloom/services/availability"
	"mindbloom/services/backend"
	"mindbloom/services/table"
)

const byEmailPath = "/api/consultations/by-email"

// Service manages consultations through the admin collection and the
// attendee lookup by email.
type Service struct {
	records backend.Repository[models.Consultation]
	client  *backend.Client
}

func NewService(records backend.Repository[models.Consultation], client *backend.Client) *Service {
	return &Service{records: records, client: client}
}

var Columns = []table.Column[models.Consultation]{
	{Key: "id", Label: "ID", Sortable: true, Value: func(c models.Consultation) any { return c.ID }},
	{Key: "title", Label: "Title", Sortable: true, Value: func(c models.Consultation) any { return c.Title }},
	{Key: "consultant_id", Label: "Consultant", Sortable: true, Value: func(c models.Consultation) any { return c.ConsultantID }},
	{Key: "start_time", Label: "Starts", Sortable: true, Value: func(c models.Consultation) any { return c.StartTime },
		Render: func(c models.Consultation) string { return availability.FormatDisplayDateTime(c.StartTime) }},
	{Key: "status", Label: "Status", Sortable: true, Value: func(c models.Consultation) any { return c.Status }},
	{Key: "payment_status", Label: "Payment", Sortable: true, Value: func(c models.Consultation) any { return c.PaymentStatus }},
}

func (s *Service) List(ctx context.Context, sess *models.Session) ([]models.Consultation, error) {
	return s.records.List(ctx, sess)
}

func (s *Service) Create(ctx context.Context, sess *models.Session, c models.Consultation) ([]models.Consultation, error) {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ID = 0
	return s.records.Create(ctx, sess, c, nil)
}

func (s *Service) Update(ctx context.Context, sess *models.Session, id int64, c models.Consultation) ([]models.Consultation, error) {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ID = 0
	return s.records.Update(ctx, sess, id, c, nil)
}

func (s *Service) Delete(ctx context.Context, sess *models.Session, id int64, confirmed bool) ([]models.Consultation, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	return s.records.Delete(ctx, sess, id)
}

// ByEmail lists the consultations an attendee email is booked on.
func (s *Service) ByEmail(ctx context.Context, sess *models.Session, email string) ([]models.Consultation, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &models.ValidationError{Field: "email", Message: "email is required"}
	}
	var out []models.Consultation
	if err := s.client.Get(ctx, sess, byEmailPath, url.Values{"email": {email}}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Consultation{}
	}
	return out, nil
}

// DeleteByEmail removes a record from the attendee lookup and returns the
// refreshed lookup for email.
func (s *Service) DeleteByEmail(ctx context.Context, sess *models.Session, id int64, email string, confirmed bool) ([]models.Consultation, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	if err := s.client.Delete(ctx, sess, fmt.Sprintf("%s/%d", byEmailPath, id)); err != nil {
		return nil, err
	}
	if email == "" {
		return []models.Consultation{}, nil
	}
	return s.ByEmail(ctx, sess, email)
}
