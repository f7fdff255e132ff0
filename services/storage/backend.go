package storage

import (
	"context"
	"fmt"

	"mindbloom/models"
)

// FileSender is the backend's upload endpoint.
type FileSender interface {
	Upload(ctx context.Context, sess *models.Session, file models.Attachment) (string, error)
}

// BackendUploader forwards files to the backend upload endpoint with the
// operator's session.
type BackendUploader struct {
	sender FileSender
}

func NewBackendUploader(sender FileSender) *BackendUploader {
	return &BackendUploader{sender: sender}
}

func (u *BackendUploader) Upload(ctx context.Context, sess *models.Session, file models.Attachment) (string, error) {
	if !file.Present() {
		return "", ErrNoFile
	}
	url, err := u.sender.Upload(ctx, sess, file)
	if err != nil {
		return "", fmt.Errorf("BackendUploader: %w", err)
	}
	return url, nil
}
