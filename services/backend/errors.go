package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is returned for any 401 from the backend. Callers drop the
// session that produced it.
var ErrUnauthorized = errors.New("backend rejected the session token")

// ErrNoSession is returned when a call needing auth is made without a session.
var ErrNoSession = errors.New("no session")

// APIError is a non-2xx backend response other than 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
