// File: services/catalog/catalog.go
package catalog

import (
	"context"

	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/table"
)

// Service manages categories and subcategories.
type Service struct {
	categories    backend.Repository[models.Category]
	subcategories backend.Repository[models.Subcategory]
}

func NewService(categories backend.Repository[models.Category], subcategories backend.Repository[models.Subcategory]) *Service {
	return &Service{categories: categories, subcategories: subcategories}
}

// CategoryColumns are the listing columns of the category table.
var CategoryColumns = []table.Column[models.Category]{
	{Key: "id", Label: "ID", Sortable: true, Value: func(c models.Category) any { return c.ID }},
	{Key: "name", Label: "Name", Sortable: true, Value: func(c models.Category) any { return c.Name }},
	{Key: "created_at", Label: "Created", Sortable: true, Value: func(c models.Category) any { return c.CreatedAt }},
}

// SubcategoryColumns are the listing columns of the subcategory table.
var SubcategoryColumns = []table.Column[models.SubcategoryRow]{
	{Key: "id", Label: "ID", Sortable: true, Value: func(r models.SubcategoryRow) any { return r.ID }},
	{Key: "name", Label: "Name", Sortable: true, Value: func(r models.SubcategoryRow) any { return r.Name }},
	{Key: "category_name", Label: "Category", Sortable: true, Value: func(r models.SubcategoryRow) any { return r.CategoryName }},
}

func (s *Service) ListCategories(ctx context.Context, sess *models.Session) ([]models.Category, error) {
	return s.categories.List(ctx, sess)
}

func (s *Service) CreateCategory(ctx context.Context, sess *models.Session, c models.Category) ([]models.Category, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, sess, c, nil)
}

func (s *Service) UpdateCategory(ctx context.Context, sess *models.Session, id int64, c models.Category) ([]models.Category, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ID = 0
	return s.categories.Update(ctx, sess, id, c, nil)
}

func (s *Service) DeleteCategory(ctx context.Context, sess *models.Session, id int64, confirmed bool) ([]models.Category, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	return s.categories.Delete(ctx, sess, id)
}

// ListSubcategories returns subcategories with their category names resolved
// against the current category list.
func (s *Service) ListSubcategories(ctx context.Context, sess *models.Session) ([]models.SubcategoryRow, error) {
	subs, err := s.subcategories.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.rows(ctx, sess, subs)
}

func (s *Service) CreateSubcategory(ctx context.Context, sess *models.Session, sub models.Subcategory) ([]models.SubcategoryRow, error) {
	if err := s.validateSubcategory(ctx, sess, sub); err != nil {
		return nil, err
	}
	subs, err := s.subcategories.Create(ctx, sess, sub, nil)
	if err != nil {
		return nil, err
	}
	return s.rows(ctx, sess, subs)
}

func (s *Service) UpdateSubcategory(ctx context.Context, sess *models.Session, id int64, sub models.Subcategory) ([]models.SubcategoryRow, error) {
	if err := s.validateSubcategory(ctx, sess, sub); err != nil {
		return nil, err
	}
	sub.ID = 0
	subs, err := s.subcategories.Update(ctx, sess, id, sub, nil)
	if err != nil {
		return nil, err
	}
	return s.rows(ctx, sess, subs)
}

func (s *Service) DeleteSubcategory(ctx context.Context, sess *models.Session, id int64, confirmed bool) ([]models.SubcategoryRow, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	subs, err := s.subcategories.Delete(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return s.rows(ctx, sess, subs)
}

// SubcategoryChoices lists the subcategories that belong to the selected categories.
func (s *Service) SubcategoryChoices(ctx context.Context, sess *models.Session, categoryIDs []int64) ([]models.Subcategory, error) {
	subs, err := s.subcategories.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	return models.FilterSubcategories(subs, categoryIDs), nil
}

func (s *Service) validateSubcategory(ctx context.Context, sess *models.Session, sub models.Subcategory) error {
	if sub.Name == "" {
		return sub.Validate(nil)
	}
	categories, err := s.categories.List(ctx, sess)
	if err != nil {
		return err
	}
	return sub.Validate(categories)
}

func (s *Service) rows(ctx context.Context, sess *models.Session, subs []models.Subcategory) ([]models.SubcategoryRow, error) {
	categories, err := s.categories.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	return models.SubcategoryRows(subs, categories), nil
}
