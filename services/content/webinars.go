package content

import (
	"context"

	"mindbloom/models"
	"mindbloom/services/availability"
	"mindbloom/services/backend"
	"mindbloom/services/table"
)

// Webinars manages webinars. Duration is always recomputed from start and end.
type Webinars struct {
	records backend.Repository[models.Webinar]
}

func NewWebinars(records backend.Repository[models.Webinar]) *Webinars {
	return &Webinars{records: records}
}

var WebinarColumns = []table.Column[models.Webinar]{
	{Key: "id", Label: "ID", Sortable: true, Value: func(w models.Webinar) any { return w.ID }},
	{Key: "title", Label: "Title", Sortable: true, Value: func(w models.Webinar) any { return w.Title }},
	{Key: "start_time", Label: "Starts", Sortable: true, Value: func(w models.Webinar) any { return w.StartTime },
		Render: func(w models.Webinar) string { return availability.FormatDisplayDateTime(w.StartTime) }},
	{Key: "duration_minutes", Label: "Minutes", Sortable: true, Value: func(w models.Webinar) any { return w.DurationMinutes }},
	{Key: "price", Label: "Price", Sortable: true, Value: func(w models.Webinar) any { return w.Price }},
	{Key: "status", Label: "Status", Sortable: true, Value: func(w models.Webinar) any { return w.Status }},
}

func (s *Webinars) List(ctx context.Context, sess *models.Session) ([]models.Webinar, error) {
	return s.records.List(ctx, sess)
}

func (s *Webinars) Create(ctx context.Context, sess *models.Session, w models.Webinar) ([]models.Webinar, error) {
	w.Normalize()
	if err := w.Validate(); err != nil {
		return nil, err
	}
	w.ID = 0
	return s.records.Create(ctx, sess, w, nil)
}

func (s *Webinars) Update(ctx context.Context, sess *models.Session, id int64, w models.Webinar) ([]models.Webinar, error) {
	w.Normalize()
	if err := w.Validate(); err != nil {
		return nil, err
	}
	w.ID = 0
	return s.records.Update(ctx, sess, id, w, nil)
}

func (s *Webinars) Delete(ctx context.Context, sess *models.Session, id int64, confirmed bool) ([]models.Webinar, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	return s.records.Delete(ctx, sess, id)
}
