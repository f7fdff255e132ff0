package storage

import (
	"context"
	"fmt"

	"mindbloom/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryFactory builds a configured Cloudinary client.
type CloudinaryFactory func() (*cloudinary.Cloudinary, error)

// CloudinaryUploader uploads directly to Cloudinary. The session is not used.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary, folder string) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld, folder: folder}
}

// Upload stores the file under the configured folder and returns its secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, _ *models.Session, file models.Attachment) (string, error) {
	if !file.Present() {
		return "", ErrNoFile
	}
	result, err := u.cld.Upload.Upload(ctx, file.Content, uploader.UploadParams{
		Folder:       u.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("CloudinaryUploader: failed to upload file: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("CloudinaryUploader: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryUploader: no URL returned")
	}
	return result.SecureURL, nil
}

// Delete removes an uploaded asset by public ID.
func (u *CloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	if _, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("CloudinaryUploader: failed to delete file: %w", err)
	}
	return nil
}
