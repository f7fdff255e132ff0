package staff

import (
	"context"

	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/table"
)

// Records is the staff user collection on the backend.
type Records interface {
	backend.StatusRepository[models.StaffUser]
	Get(ctx context.Context, sess *models.Session, id int64) (models.StaffUser, error)
}

// Service manages back-office accounts.
type Service struct {
	records Records
}

func NewService(records Records) *Service {
	return &Service{records: records}
}

var Columns = []table.Column[models.StaffUser]{
	{Key: "id", Label: "ID", Sortable: true, Value: func(u models.StaffUser) any { return u.ID }},
	{Key: "username", Label: "Username", Sortable: true, Value: func(u models.StaffUser) any { return u.Username }},
	{Key: "role", Label: "Role", Sortable: true, Value: func(u models.StaffUser) any { return u.Role }},
	{Key: "status", Label: "Status", Sortable: true, Value: func(u models.StaffUser) any { return u.Status }},
}

// List returns the users without password fields.
func (s *Service) List(ctx context.Context, sess *models.Session) ([]models.StaffUser, error) {
	users, err := s.records.List(ctx, sess)
	return scrub(users), err
}

func (s *Service) Create(ctx context.Context, sess *models.Session, u models.StaffUser) ([]models.StaffUser, error) {
	if err := u.Validate(true); err != nil {
		return nil, err
	}
	if u.Status == "" {
		u.Status = models.UserActive
	}
	u.ID = 0
	users, err := s.records.Create(ctx, sess, u, nil)
	return scrub(users), err
}

// Update leaves the password unchanged when it is blank.
func (s *Service) Update(ctx context.Context, sess *models.Session, id int64, u models.StaffUser) ([]models.StaffUser, error) {
	if err := u.Validate(false); err != nil {
		return nil, err
	}
	u.ID = 0
	users, err := s.records.Update(ctx, sess, id, u, nil)
	return scrub(users), err
}

func (s *Service) Delete(ctx context.Context, sess *models.Session, id int64, confirmed bool) ([]models.StaffUser, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	users, err := s.records.Delete(ctx, sess, id)
	return scrub(users), err
}

// ToggleStatus flips active/inactive through the status sub-resource.
func (s *Service) ToggleStatus(ctx context.Context, sess *models.Session, id int64) ([]models.StaffUser, error) {
	current, err := s.records.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	users, err := s.records.SetStatus(ctx, sess, id, models.NextUserStatus(current.Status))
	return scrub(users), err
}

func scrub(users []models.StaffUser) []models.StaffUser {
	for i := range users {
		users[i].Password = ""
	}
	return users
}
