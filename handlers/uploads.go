package handlers

import (
	"context"
	"errors"
	"net/http"

	"mindbloom/models"
	"mindbloom/services/storage"

	"github.com/gin-gonic/gin"
)

// AuthURLSource is the backend's admin OAuth bootstrap.
type AuthURLSource interface {
	GoogleAuthURL(ctx context.Context, sess *models.Session) (string, error)
}

// UploadHandler serves ad-hoc media uploads and the Google sign-in bootstrap.
type UploadHandler struct {
	responder
	Uploader storage.Uploader
	Auth     AuthURLSource
}

func NewUploadHandler(uploader storage.Uploader, auth AuthURLSource, sessions SessionCloser) *UploadHandler {
	return &UploadHandler{responder: responder{sessions: sessions}, Uploader: uploader, Auth: auth}
}

// UploadHandler stores the multipart "file" part and returns its URL.
func (h *UploadHandler) UploadHandler(c *gin.Context) {
	file, err := formFile(c, "file")
	if err != nil {
		badRequest(c, "Invalid file upload", err)
		return
	}
	if !file.Present() {
		badRequest(c, "Missing file part", nil)
		return
	}

	url, err := h.Uploader.Upload(c.Request.Context(), sessionOf(c), *file)
	if errors.Is(err, storage.ErrNoFile) {
		badRequest(c, "Missing file part", nil)
		return
	}
	if err != nil {
		h.fail(c, "upload file", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func (h *UploadHandler) GoogleAuthHandler(c *gin.Context) {
	url, err := h.Auth.GoogleAuthURL(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "start Google sign-in", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
