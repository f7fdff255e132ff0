// File: services/content/blogs.go
package content

import (
	"context"
	"fmt"

	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/storage"
	"mindbloom/services/table"
)

// Blogs manages blog posts. A thumbnail file is uploaded first and the post
// is stored with its URL.
type Blogs struct {
	records  backend.Repository[models.Blog]
	uploader storage.Uploader
}

func NewBlogs(records backend.Repository[models.Blog], uploader storage.Uploader) *Blogs {
	return &Blogs{records: records, uploader: uploader}
}

var BlogColumns = []table.Column[models.Blog]{
	{Key: "id", Label: "ID", Sortable: true, Value: func(b models.Blog) any { return b.ID }},
	{Key: "title", Label: "Title", Sortable: true, Value: func(b models.Blog) any { return b.Title }},
	{Key: "category", Label: "Category", Sortable: true, Value: func(b models.Blog) any { return b.Category }},
	{Key: "status", Label: "Status", Sortable: true, Value: func(b models.Blog) any { return b.Status }},
}

func (s *Blogs) List(ctx context.Context, sess *models.Session) ([]models.Blog, error) {
	return s.records.List(ctx, sess)
}

func (s *Blogs) Create(ctx context.Context, sess *models.Session, b models.Blog, thumbnail *models.Attachment) ([]models.Blog, error) {
	if err := s.prepare(ctx, sess, &b, thumbnail); err != nil {
		return nil, err
	}
	return s.records.Create(ctx, sess, b, nil)
}

func (s *Blogs) Update(ctx context.Context, sess *models.Session, id int64, b models.Blog, thumbnail *models.Attachment) ([]models.Blog, error) {
	if err := s.prepare(ctx, sess, &b, thumbnail); err != nil {
		return nil, err
	}
	return s.records.Update(ctx, sess, id, b, nil)
}

func (s *Blogs) Delete(ctx context.Context, sess *models.Session, id int64, confirmed bool) ([]models.Blog, error) {
	if !confirmed {
		return nil, models.ErrConfirmationRequired
	}
	return s.records.Delete(ctx, sess, id)
}

func (s *Blogs) prepare(ctx context.Context, sess *models.Session, b *models.Blog, thumbnail *models.Attachment) error {
	if err := b.Validate(); err != nil {
		return err
	}
	b.ID = 0
	if !thumbnail.Present() {
		return nil
	}
	url, err := s.uploader.Upload(ctx, sess, *thumbnail)
	if err != nil {
		return fmt.Errorf("failed to upload thumbnail: %w", err)
	}
	b.Thumbnail = url
	return nil
}
