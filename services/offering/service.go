// File: services/offering/service.go
package offering

import (
	"context"
	"fmt"

	"mindbloom/models"
	"mindbloom/services/availability"
	"mindbloom/services/backend"
	"mindbloom/services/table"
)

// SlotLister fetches one consultant's persisted slots.
type SlotLister interface {
	ListSlots(ctx context.Context, sess *models.Session, consultantID int64) ([]models.AvailabilitySlot, error)
}

// Records is the service collection on the backend.
type Records interface {
	backend.Repository[models.Service]
	Get(ctx context.Context, sess *models.Session, id int64) (models.Service, error)
}

// Service manages services (appointments, subscriptions, events and tests).
type Service struct {
	records Records
	slots   SlotLister
	deriver *availability.Deriver
}

func NewService(records Records, slots SlotLister, deriver *availability.Deriver) *Service {
	if deriver == nil {
		deriver = availability.NewDeriver()
	}
	return &Service{records: records, slots: slots, deriver: deriver}
}

var Columns = []table.Column[models.Service]{
	{Key: "id", Label: "ID", Sortable: true, Value: func(s models.Service) any { return s.ID }},
	{Key: "name", Label: "Name", Sortable: true, Value: func(s models.Service) any { return s.Name }},
	{Key: "service_type", Label: "Type", Sortable: true, Value: func(s models.Service) any { return string(s.ServiceType) }},
	{Key: "delivery_mode", Label: "Delivery", Sortable: true, Value: func(s models.Service) any { return s.DeliveryMode }},
}

func (s *Service) List(ctx context.Context, sess *models.Session) ([]models.Service, error) {
	return s.records.List(ctx, sess)
}

// EditForm seeds a form from the stored service.
func (s *Service) EditForm(ctx context.Context, sess *models.Session, id int64) (models.ServiceForm, error) {
	record, err := s.records.Get(ctx, sess, id)
	if err != nil {
		return models.ServiceForm{}, err
	}
	return models.ServiceFormFromRecord(record), nil
}

// Create validates the active variant and sends only its fields.
func (s *Service) Create(ctx context.Context, sess *models.Session, form models.ServiceForm) ([]models.Service, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	payload := form.Payload()
	payload.ID = 0
	return s.records.Create(ctx, sess, payload, form.Files())
}

func (s *Service) Update(ctx context.Context, sess *models.Session, id int64, form models.ServiceForm) ([]models.Service, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	payload := form.Payload()
	payload.ID = 0
	return s.records.Update(ctx, sess, id, payload, form.Files())
}

func (s *Service) Delete(ctx context.Context, sess *models.Session, id int64, confirmed bool) ([]models.Service, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	return s.records.Delete(ctx, sess, id)
}

// BookingOptions fetches the slots of each selected consultant, one at a time,
// and derives the dates and times a booking can use.
func (s *Service) BookingOptions(ctx context.Context, sess *models.Session, consultantIDs []int64, date string) (availability.BookingOptions, error) {
	consultants := make([]availability.ConsultantSlots, 0, len(consultantIDs))
	for _, id := range consultantIDs {
		slots, err := s.slots.ListSlots(ctx, sess, id)
		if err != nil {
			return availability.BookingOptions{}, fmt.Errorf("failed to load slots of consultant %d: %w", id, err)
		}
		consultants = append(consultants, availability.ConsultantSlots{ConsultantID: id, Slots: availability.Flatten(slots)})
	}
	return s.deriver.Options(consultants, consultantIDs, date), nil
}
