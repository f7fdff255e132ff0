// File: services/consultant/service.go
package consultant

import (
	"context"
	"errors"
	"fmt"

	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/slots"
	"mindbloom/services/table"
	"mindbloom/utils"

	"go.uber.org/zap"
)

// Records is the consultant collection on the backend.
type Records interface {
	backend.StatusRepository[models.Consultant]
	Get(ctx context.Context, sess *models.Session, id int64) (models.Consultant, error)
	CreateOne(ctx context.Context, sess *models.Session, item any, files []models.Attachment) (models.Consultant, error)
}

// SlotStore loads and fully replaces a consultant's availability.
type SlotStore interface {
	Load(ctx context.Context, sess *models.Session, consultantID int64) ([]models.SlotDraft, error)
	Replace(ctx context.Context, sess *models.Session, consultantID int64, drafts []models.SlotDraft) (*models.ReplaceEntry, error)
	Retry(ctx context.Context, sess *models.Session, consultantID int64) (*models.ReplaceEntry, error)
	History(ctx context.Context, consultantID int64) ([]models.ReplaceEntry, error)
}

// Service manages consultants and their availability.
type Service struct {
	records Records
	slots   SlotStore
	email   models.EmailRule
}

func NewService(records Records, slotStore SlotStore, emailDomain string) *Service {
	return &Service{records: records, slots: slotStore, email: models.NewEmailRule(emailDomain)}
}

var Columns = []table.Column[models.Consultant]{
	{Key: "id", Label: "ID", Sortable: true, Value: func(c models.Consultant) any { return c.ID }},
	{Key: "name", Label: "Name", Sortable: true, Value: func(c models.Consultant) any { return c.Name }},
	{Key: "email", Label: "Email", Sortable: true, Value: func(c models.Consultant) any { return c.Email }},
	{Key: "speciality", Label: "Speciality", Sortable: true, Value: func(c models.Consultant) any { return c.Speciality }},
	{Key: "status", Label: "Status", Sortable: true, Value: func(c models.Consultant) any { return c.Status }},
	{Key: "featured", Label: "Featured", Sortable: true, Value: func(c models.Consultant) any { return c.Featured }},
}

func (s *Service) List(ctx context.Context, sess *models.Session) ([]models.Consultant, error) {
	return s.records.List(ctx, sess)
}

// EditForm loads a consultant and its slots, fetched fresh, into an edit form.
func (s *Service) EditForm(ctx context.Context, sess *models.Session, id int64) (models.ConsultantForm, error) {
	record, err := s.records.Get(ctx, sess, id)
	if err != nil {
		return models.ConsultantForm{}, err
	}
	drafts, err := s.slots.Load(ctx, sess, id)
	if err != nil {
		return models.ConsultantForm{}, fmt.Errorf("failed to load availability: %w", err)
	}
	return models.ConsultantFormFromRecord(record, drafts), nil
}

// Create stores a new consultant and then its slots. When the slot save
// fails the consultant still exists and the error is a *slots.ReplaceError.
func (s *Service) Create(ctx context.Context, sess *models.Session, form models.ConsultantForm) ([]models.Consultant, error) {
	payload, err := s.prepare(form)
	if err != nil {
		return nil, err
	}
	payload.ID = 0

	created, err := s.records.CreateOne(ctx, sess, payload, form.Files())
	if err != nil {
		return nil, err
	}
	id := created.ID
	if id == 0 {
		if id, err = s.findByEmail(ctx, sess, payload.Email); err != nil {
			return nil, err
		}
	}
	return s.saveSlotsAndList(ctx, sess, id, form.Slots)
}

// Update stores the consultant and fully replaces its slots.
func (s *Service) Update(ctx context.Context, sess *models.Session, id int64, form models.ConsultantForm) ([]models.Consultant, error) {
	payload, err := s.prepare(form)
	if err != nil {
		return nil, err
	}
	payload.ID = 0

	if _, err := s.records.Update(ctx, sess, id, payload, form.Files()); err != nil {
		return nil, err
	}
	return s.saveSlotsAndList(ctx, sess, id, form.Slots)
}

func (s *Service) Delete(ctx context.Context, sess *models.Session, id int64, confirmed bool) ([]models.Consultant, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	return s.records.Delete(ctx, sess, id)
}

// ToggleStatus flips online/offline through the status sub-resource.
func (s *Service) ToggleStatus(ctx context.Context, sess *models.Session, id int64) ([]models.Consultant, error) {
	current, err := s.records.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return s.records.SetStatus(ctx, sess, id, models.NextConsultantStatus(current.Status))
}

// Availability returns the consultant's slots as drafts.
func (s *Service) Availability(ctx context.Context, sess *models.Session, id int64) ([]models.SlotDraft, error) {
	return s.slots.Load(ctx, sess, id)
}

// ReplaceAvailability replaces the slots without touching the consultant record.
func (s *Service) ReplaceAvailability(ctx context.Context, sess *models.Session, id int64, drafts []models.SlotDraft) (*models.ReplaceEntry, error) {
	return s.slots.Replace(ctx, sess, id, drafts)
}

// RetryAvailability re-runs the consultant's last failed slot replacement.
func (s *Service) RetryAvailability(ctx context.Context, sess *models.Session, id int64) (*models.ReplaceEntry, error) {
	return s.slots.Retry(ctx, sess, id)
}

// AvailabilityHistory lists the journaled slot replacements, newest first.
func (s *Service) AvailabilityHistory(ctx context.Context, id int64) ([]models.ReplaceEntry, error) {
	return s.slots.History(ctx, id)
}

func (s *Service) prepare(form models.ConsultantForm) (models.Consultant, error) {
	if err := form.Validate(s.email); err != nil {
		return models.Consultant{}, err
	}
	return form.Payload()
}

func (s *Service) saveSlotsAndList(ctx context.Context, sess *models.Session, id int64, drafts []models.SlotDraft) ([]models.Consultant, error) {
	if _, err := s.slots.Replace(ctx, sess, id, drafts); err != nil {
		var replaceErr *slots.ReplaceError
		if errors.As(err, &replaceErr) {
			utils.GetLogger().Warn("Consultant saved but availability is partial",
				zap.Int64("consultant", id), zap.String("journal", replaceErr.JournalID))
		}
		return nil, err
	}
	return s.records.List(ctx, sess)
}

func (s *Service) findByEmail(ctx context.Context, sess *models.Session, email string) (int64, error) {
	list, err := s.records.List(ctx, sess)
	if err != nil {
		return 0, err
	}
	for _, c := range list {
		if c.Email == email {
			return c.ID, nil
		}
	}
	return 0, fmt.Errorf("created consultant %s not found in listing", email)
}
