// File: services/backend/repository.go
package backend

import (
	"context"
	"fmt"
	"net/http"

	"mindbloom/models"
)

// Repository is the list/create/update/delete surface of one backend collection.
// Mutations return the freshly refetched collection.
type Repository[T any] interface {
	List(ctx context.Context, sess *models.Session) ([]T, error)
	Create(ctx context.Context, sess *models.Session, item any, files []models.Attachment) ([]T, error)
	Update(ctx context.Context, sess *models.Session, id int64, item any, files []models.Attachment) ([]T, error)
	Delete(ctx context.Context, sess *models.Session, id int64) ([]T, error)
}

// Resource is a Repository over a base path such as /api/categories.
type Resource[T any] struct {
	client    *Client
	base      string
	multipart bool
}

// NewResource returns a JSON repository rooted at base.
func NewResource[T any](client *Client, base string) *Resource[T] {
	return &Resource[T]{client: client, base: base}
}

// NewMultipartResource returns a repository whose create and update calls are
// sent as multipart/form-data.
func NewMultipartResource[T any](client *Client, base string) *Resource[T] {
	return &Resource[T]{client: client, base: base, multipart: true}
}

func (r *Resource[T]) List(ctx context.Context, sess *models.Session) ([]T, error) {
	var items []T
	if err := r.client.Get(ctx, sess, r.base, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Get fetches a single record.
func (r *Resource[T]) Get(ctx context.Context, sess *models.Session, id int64) (T, error) {
	var item T
	err := r.client.Get(ctx, sess, r.Path(id), nil, &item)
	return item, err
}

func (r *Resource[T]) Create(ctx context.Context, sess *models.Session, item any, files []models.Attachment) ([]T, error) {
	if err := r.write(ctx, sess, http.MethodPost, r.base, item, files, nil); err != nil {
		return nil, err
	}
	return r.List(ctx, sess)
}

// CreateOne posts item and returns the created record as the backend echoes it.
func (r *Resource[T]) CreateOne(ctx context.Context, sess *models.Session, item any, files []models.Attachment) (T, error) {
	var created T
	err := r.write(ctx, sess, http.MethodPost, r.base, item, files, &created)
	return created, err
}

func (r *Resource[T]) Update(ctx context.Context, sess *models.Session, id int64, item any, files []models.Attachment) ([]T, error) {
	if err := r.write(ctx, sess, http.MethodPut, r.Path(id), item, files, nil); err != nil {
		return nil, err
	}
	return r.List(ctx, sess)
}

func (r *Resource[T]) Delete(ctx context.Context, sess *models.Session, id int64) ([]T, error) {
	if err := r.client.Delete(ctx, sess, r.Path(id)); err != nil {
		return nil, err
	}
	return r.List(ctx, sess)
}

// SetStatus posts to the status sub-resource and returns the refetched list.
func (r *Resource[T]) SetStatus(ctx context.Context, sess *models.Session, id int64, status string) ([]T, error) {
	if err := r.client.Send(ctx, sess, http.MethodPost, r.Path(id)+"/status", models.StatusToggle{Status: status}, nil); err != nil {
		return nil, err
	}
	return r.List(ctx, sess)
}

// Path is the URL of one record.
func (r *Resource[T]) Path(id int64) string {
	return fmt.Sprintf("%s/%d", r.base, id)
}

func (r *Resource[T]) write(ctx context.Context, sess *models.Session, method, path string, item any, files []models.Attachment, out any) error {
	if r.multipart {
		return r.client.SendMultipart(ctx, sess, method, path, item, files, out)
	}
	return r.client.Send(ctx, sess, method, path, item, out)
}

// StatusRepository is a Repository with a status sub-resource.
type StatusRepository[T any] interface {
	Repository[T]
	SetStatus(ctx context.Context, sess *models.Session, id int64, status string) ([]T, error)
}
