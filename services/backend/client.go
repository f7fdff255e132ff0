// File: services/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mindbloom/models"
	"mindbloom/utils"

	"go.uber.org/zap"
)

// Client calls the REST backend on behalf of a session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	uploadPath string
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUploadPath sets the path of the file upload endpoint.
func WithUploadPath(path string) Option {
	return func(c *Client) { c.uploadPath = path }
}

// NewClient creates a client for baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		uploadPath: "/api/upload",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get decodes the response of GET path into out.
func (c *Client) Get(ctx context.Context, sess *models.Session, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.do(ctx, sess, http.MethodGet, path, nil, "", out)
}

// Send issues method on path with a JSON body.
func (c *Client) Send(ctx context.Context, sess *models.Session, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	return c.do(ctx, sess, method, path, reader, "application/json", out)
}

// SendMultipart issues method on path with fields and files as multipart/form-data.
func (c *Client) SendMultipart(ctx context.Context, sess *models.Session, method, path string, fields any, files []models.Attachment, out any) error {
	body, contentType, err := EncodeMultipart(fields, files)
	if err != nil {
		return err
	}
	return c.do(ctx, sess, method, path, body, contentType, out)
}

// Delete issues DELETE on path.
func (c *Client) Delete(ctx context.Context, sess *models.Session, path string) error {
	return c.do(ctx, sess, http.MethodDelete, path, nil, "", nil)
}

// Profile returns the holder of sess's token.
func (c *Client) Profile(ctx context.Context, sess *models.Session) (models.Profile, error) {
	var envelope struct {
		models.Profile
		User *models.Profile `json:"user"`
	}
	if err := c.Get(ctx, sess, "/api/auth/profile", nil, &envelope); err != nil {
		return models.Profile{}, err
	}
	if envelope.User != nil {
		return *envelope.User, nil
	}
	return envelope.Profile, nil
}

// Upload sends a single file to the upload endpoint and returns its URL.
func (c *Client) Upload(ctx context.Context, sess *models.Session, file models.Attachment) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.SendMultipart(ctx, sess, http.MethodPost, c.uploadPath, nil, []models.Attachment{file}, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", fmt.Errorf("upload response carried no url")
	}
	return resp.URL, nil
}

// GoogleAuthURL returns the backend's OAuth bootstrap URL for admins.
func (c *Client) GoogleAuthURL(ctx context.Context, sess *models.Session) (string, error) {
	var resp struct {
		URL     string `json:"url"`
		AuthURL string `json:"authUrl"`
	}
	if err := c.Get(ctx, sess, "/api/auth/admin/google", nil, &resp); err != nil {
		return "", err
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return resp.AuthURL, nil
}

func (c *Client) do(ctx context.Context, sess *models.Session, method, path string, body io.Reader, contentType string, out any) error {
	if sess == nil || sess.Token == "" {
		return ErrNoSession
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" && body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.GetLogger().Error("Backend request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(respBody)}
		utils.GetLogger().Warn("Backend returned an error",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := decode(respBody, out); err != nil {
		return fmt.Errorf("failed to parse backend response: %w", err)
	}
	return nil
}

// decode accepts either the bare payload or a {"data": payload} envelope.
func decode(body []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			return json.Unmarshal(envelope.Data, out)
		}
	}
	return json.Unmarshal(trimmed, out)
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
