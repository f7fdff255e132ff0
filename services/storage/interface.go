package storage

import (
	"context"
	"fmt"

	"mindbloom/models"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, sess *models.Session, file models.Attachment) (string, error)
}

// Driver names accepted by STORAGE_DRIVER.
const (
	DriverBackend    = "backend"
	DriverCloudinary = "cloudinary"
)

// ErrNoFile is returned when an attachment carries no content.
var ErrNoFile = fmt.Errorf("no file supplied")

// New returns the uploader selected by driver. cloudinaryFolder is only used
// by the cloudinary driver.
func New(driver string, sender FileSender, cld CloudinaryFactory, cloudinaryFolder string) (Uploader, error) {
	switch driver {
	case "", DriverBackend:
		return NewBackendUploader(sender), nil
	case DriverCloudinary:
		client, err := cld()
		if err != nil {
			return nil, err
		}
		return NewCloudinaryUploader(client, cloudinaryFolder), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", driver)
}
