package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"mindbloom/middleware"
	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/slots"
	"mindbloom/services/table"
	"mindbloom/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		models.UseJSONNames(v)
	}
}

// SessionCloser ends a session whose backend token was rejected.
type SessionCloser interface {
	Close(ctx context.Context, id string) error
}

// responder turns service errors into gateway responses.
type responder struct {
	sessions SessionCloser
}

func (r responder) fail(c *gin.Context, action string, err error) {
	var validation *models.ValidationError
	var replace *slots.ReplaceError
	var apiErr *backend.APIError

	switch {
	case errors.As(err, &validation):
		utils.GetLogger().Warn("Validation rejected", zap.String("action", action), zap.String("field", validation.Field))
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "field": validation.Field})
	case errors.Is(err, models.ErrConfirmationRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delete must be confirmed with confirm=true"})
	case errors.Is(err, backend.ErrUnauthorized):
		if sess := middleware.CurrentSession(c); sess != nil && r.sessions != nil {
			if cerr := r.sessions.Close(c.Request.Context(), sess.ID); cerr != nil {
				utils.GetLogger().Error("Failed to close rejected session", zap.Error(cerr))
			}
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
	case errors.As(err, &replace):
		utils.GetLogger().Error("Slot replacement incomplete", zap.String("action", action), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":      replace.Err.Error(),
			"phase":      replace.Phase,
			"deleted":    replace.Deleted,
			"created":    replace.Created,
			"journal_id": replace.JournalID,
		})
	case errors.As(err, &apiErr):
		status := http.StatusBadGateway
		switch apiErr.Status {
		case http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
			status = apiErr.Status
		}
		utils.GetLogger().Error("Backend request failed", zap.String("action", action), zap.Int("status", apiErr.Status), zap.Error(err))
		c.JSON(status, gin.H{"error": "Failed to " + action, "message": apiErr.Message})
	default:
		utils.GetLogger().Error("Request failed", zap.String("action", action), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to " + action, "message": err.Error()})
	}
}

func badRequest(c *gin.Context, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		body["message"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

// invalidPayload reports a body that failed to decode or failed its binding tags.
// A tag failure names the field the same way a service ValidationError does.
func invalidPayload(c *gin.Context, err error) {
	var validation *models.ValidationError
	if errors.As(models.FieldError(err), &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "field": validation.Field})
		return
	}
	badRequest(c, "Invalid request payload", err)
}

// respondList sends rows searched, sorted and paginated by the request's query string.
func respondList[T any](c *gin.Context, status int, rows []T, cols []table.Column[T]) {
	c.JSON(status, table.Apply(rows, cols, table.QueryFromRequest(c)))
}

func sessionOf(c *gin.Context) *models.Session {
	return middleware.CurrentSession(c)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid id in path", nil)
		return 0, false
	}
	return id, true
}

func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// bindForm decodes a JSON body, or the JSON "payload" field of a multipart body.
func bindForm(c *gin.Context, dst any) error {
	if !isMultipart(c) {
		return c.ShouldBindJSON(dst)
	}
	payload := c.PostForm("payload")
	if payload == "" {
		return fmt.Errorf("missing payload field")
	}
	return json.Unmarshal([]byte(payload), dst)
}

// formFile reads an optional file part. A missing part yields nil.
func formFile(c *gin.Context, field string) (*models.Attachment, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &models.Attachment{Field: field, FileName: fh.Filename, Content: bytes.NewReader(data)}, nil
}

// formFiles reads each named part into the matching destination.
func formFiles(c *gin.Context, dst map[string]**models.Attachment) error {
	for field, target := range dst {
		a, err := formFile(c, field)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		*target = a
	}
	return nil
}
