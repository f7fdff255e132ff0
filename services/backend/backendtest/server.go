// Package backendtest is an in-memory stand-in for the REST backend used in tests.
package backendtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// Token is the bearer token the fake accepts unless Tokens is changed.
const Token = "test-token"

// Request is a recorded call.
type Request struct {
	Method      string
	Path        string
	ContentType string
	Body        map[string]any
	Files       map[string]string
}

type failure struct {
	method string
	prefix string
	status int
	after  int
}

// Server stores every collection as id-keyed JSON objects.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string]map[int64]map[string]any
	nextID      int64
	requests    []Request
	failures    []*failure

	Tokens  map[string]bool
	Profile map[string]any
}

// New starts a fake backend that is closed when the test ends.
func New(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		collections: map[string]map[int64]map[string]any{},
		Tokens:      map[string]bool{Token: true},
		Profile:     map[string]any{"id": 1, "username": "admin", "role": "superadmin"},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Seed stores records under collection path and returns their ids.
func (s *Server) Seed(path string, records ...map[string]any) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, s.insertLocked(path, r))
	}
	return ids
}

// Records returns the collection at path ordered by id.
func (s *Server) Records(path string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(path)
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many calls matched method and path prefix.
func (s *Server) Count(method, prefix string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && strings.HasPrefix(r.Path, prefix) {
			n++
		}
	}
	return n
}

// FailAfter makes calls matching method and path prefix answer status once
// after matching calls have succeeded.
func (s *Server) FailAfter(method, prefix string, after, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, &failure{method: method, prefix: prefix, status: status, after: after})
}

// ClearFailures removes every injected failure.
func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = nil
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := Request{Method: r.Method, Path: r.URL.Path, ContentType: r.Header.Get("Content-Type")}
	req.Body, req.Files = readBody(r)
	s.requests = append(s.requests, req)

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !s.Tokens[token] {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	if status := s.injectedLocked(r.Method, r.URL.Path); status != 0 {
		writeJSON(w, status, map[string]string{"message": "injected failure"})
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	switch {
	case path == "/api/auth/profile":
		writeJSON(w, http.StatusOK, s.Profile)
		return
	case path == "/api/auth/admin/google":
		writeJSON(w, http.StatusOK, map[string]string{"url": "https://accounts.example.test/o/oauth2"})
		return
	case path == "/api/upload":
		for _, name := range req.Files {
			writeJSON(w, http.StatusOK, map[string]string{"url": "https://cdn.example.test/" + name})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "no file"})
		return
	}

	if strings.HasSuffix(path, "/status") && r.Method == http.MethodPost {
		collection, id, ok := splitItem(strings.TrimSuffix(path, "/status"))
		if !ok || s.collections[collection][id] == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
			return
		}
		s.collections[collection][id]["status"] = req.Body["status"]
		writeJSON(w, http.StatusOK, s.collections[collection][id])
		return
	}

	if collection, id, ok := splitItem(path); ok {
		s.item(w, r.Method, collection, id, req.Body)
		return
	}
	s.collection(w, r, path, req.Body)
}

func (s *Server) collection(w http.ResponseWriter, r *http.Request, path string, body map[string]any) {
	switch r.Method {
	case http.MethodGet:
		records := s.listLocked(path)
		if email := r.URL.Query().Get("email"); email != "" {
			filtered := []map[string]any{}
			for _, rec := range records {
				if matchesEmail(rec, email) {
					filtered = append(filtered, rec)
				}
			}
			records = filtered
		}
		writeJSON(w, http.StatusOK, records)
	case http.MethodPost:
		id := s.insertLocked(path, body)
		writeJSON(w, http.StatusCreated, s.collections[path][id])
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
	}
}

func (s *Server) item(w http.ResponseWriter, method, collection string, id int64, body map[string]any) {
	rec := s.collections[collection][id]
	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	switch method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, rec)
	case http.MethodPut:
		for k, v := range body {
			rec[k] = v
		}
		rec["id"] = id
		writeJSON(w, http.StatusOK, rec)
	case http.MethodDelete:
		delete(s.collections[collection], id)
		writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
	}
}

func (s *Server) insertLocked(path string, record map[string]any) int64 {
	if s.collections[path] == nil {
		s.collections[path] = map[int64]map[string]any{}
	}
	s.nextID++
	rec := map[string]any{}
	for k, v := range record {
		rec[k] = v
	}
	rec["id"] = s.nextID
	s.collections[path][s.nextID] = rec
	return s.nextID
}

func (s *Server) listLocked(path string) []map[string]any {
	ids := make([]int64, 0, len(s.collections[path]))
	for id := range s.collections[path] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.collections[path][id])
	}
	return out
}

func (s *Server) injectedLocked(method, path string) int {
	for _, f := range s.failures {
		if f.method != method || !strings.HasPrefix(path, f.prefix) {
			continue
		}
		if f.after > 0 {
			f.after--
			continue
		}
		if f.after == 0 {
			f.after = -1
			return f.status
		}
	}
	return 0
}

func splitItem(path string) (string, int64, bool) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", 0, false
	}
	id, err := strconv.ParseInt(path[i+1:], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return path[:i], id, true
}

func matchesEmail(rec map[string]any, email string) bool {
	if v, ok := rec["email"].(string); ok && v == email {
		return true
	}
	if list, ok := rec["attendee_emails"].([]any); ok {
		for _, e := range list {
			if e == email {
				return true
			}
		}
	}
	return false
}

// readBody decodes a JSON or multipart body into a flat map. Multipart values
// holding JSON text are decoded back into lists and objects.
func readBody(r *http.Request) (map[string]any, map[string]string) {
	body := map[string]any{}
	files := map[string]string{}
	if r.Body == nil {
		return body, files
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return body, files
		}
		for k, vs := range r.MultipartForm.Value {
			if len(vs) == 0 {
				continue
			}
			body[k] = formValue(k, vs[0])
		}
		for k, fhs := range r.MultipartForm.File {
			if len(fhs) > 0 {
				files[k] = fhs[0].Filename
			}
		}
		return body, files
	}

	_ = json.NewDecoder(r.Body).Decode(&body)
	return body, files
}

// typedFields are the form fields the backend schema stores as numbers or booleans.
var typedFields = map[string]bool{
	"price": true, "discount_price": true, "stock": true, "pages": true,
	"featured": true, "is_free": true, "max_attendees": true, "duration_minutes": true,
	"category_id": true, "consultant_id": true,
}

func formValue(key, value string) any {
	if strings.HasPrefix(value, "[") || strings.HasPrefix(value, "{") || typedFields[key] {
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			return decoded
		}
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
