package product

import (
	"context"

	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/table"
)

// Records is the product collection on the backend.
type Records interface {
	backend.Repository[models.Product]
	Get(ctx context.Context, sess *models.Session, id int64) (models.Product, error)
}

// Service manages marketplace products. Create and update are multipart.
type Service struct {
	records Records
}

func NewService(records Records) *Service {
	return &Service{records: records}
}

// DisplayName is the title of a course or the name of any other product.
func DisplayName(p models.Product) string {
	if p.Type == models.ProductCourse && p.Title != "" {
		return p.Title
	}
	return p.Name
}

var Columns = []table.Column[models.Product]{
	{Key: "id", Label: "ID", Sortable: true, Value: func(p models.Product) any { return p.ID }},
	{Key: "name", Label: "Name", Sortable: true, Value: func(p models.Product) any { return DisplayName(p) }},
	{Key: "type", Label: "Type", Sortable: true, Value: func(p models.Product) any { return string(p.Type) }},
	{Key: "price", Label: "Price", Sortable: true, Value: func(p models.Product) any { return p.Price }},
	{Key: "status", Label: "Status", Sortable: true, Value: func(p models.Product) any { return p.Status }},
	{Key: "featured", Label: "Featured", Sortable: true, Value: func(p models.Product) any { return p.Featured }},
}

func (s *Service) List(ctx context.Context, sess *models.Session) ([]models.Product, error) {
	return s.records.List(ctx, sess)
}

// EditForm seeds a form from the stored product. Upload fields start empty.
func (s *Service) EditForm(ctx context.Context, sess *models.Session, id int64) (models.ProductForm, error) {
	p, err := s.records.Get(ctx, sess, id)
	if err != nil {
		return models.ProductForm{}, err
	}
	return models.ProductFormFromRecord(p), nil
}

func (s *Service) Create(ctx context.Context, sess *models.Session, form models.ProductForm) ([]models.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	payload := form.Payload()
	payload.ID = 0
	return s.records.Create(ctx, sess, payload, form.Files())
}

func (s *Service) Update(ctx context.Context, sess *models.Session, id int64, form models.ProductForm) ([]models.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	payload := form.Payload()
	payload.ID = 0
	return s.records.Update(ctx, sess, id, payload, form.Files())
}

func (s *Service) Delete(ctx context.Context, sess *models.Session, id int64, confirmed bool) ([]models.Product, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	return s.records.Delete(ctx, sess, id)
}
