package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	journalRepo "mindbloom/database/repository/journal"
	"mindbloom/middleware"
	"mindbloom/models"
	"mindbloom/services/backend"
	"mindbloom/services/backend/backendtest"
	"mindbloom/services/catalog"
	"mindbloom/services/consultant"
	"mindbloom/services/landing"
	"mindbloom/services/product"
	"mindbloom/services/session"
	"mindbloom/services/slots"
	"mindbloom/services/staff"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t       *testing.T
	backend *backendtest.Server
	router  *gin.Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := backendtest.New(t)
	client := backend.NewClient(srv.URL, time.Second)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sessions := session.NewManager(session.NewStore(rdb), client, time.Hour)

	catalogH := NewCatalogHandler(catalog.NewService(
		backend.NewResource[models.Category](client, "/api/categories"),
		backend.NewResource[models.Subcategory](client, "/api/subcategories"),
	), sessions)
	replacer := slots.NewReplacer(backend.NewAvailability(client), journalRepo.NewMemoryJournalRepo())
	consultantH := NewConsultantHandler(consultant.NewService(
		backend.NewMultipartResource[models.Consultant](client, "/api/consultants"), replacer, "gmail.com"), sessions)
	usersH := NewUserHandler(staff.NewService(backend.NewResource[models.StaffUser](client, "/api/users")), sessions)
	productH := NewProductHandler(product.NewService(backend.NewMultipartResource[models.Product](client, "/api/products")), sessions)
	landingH := NewLandingHandler(landing.NewService(landing.DefaultDataset()))
	sessionH := NewSessionHandler(sessions)

	r := gin.New()
	auth := middleware.SessionAuth(sessions)
	r.POST("/admin/session", sessionH.OpenSessionHandler)
	admin := r.Group("/admin", auth)
	admin.GET("/session", sessionH.GetSessionHandler)
	admin.DELETE("/session", sessionH.CloseSessionHandler)
	admin.GET("/categories", catalogH.ListCategoriesHandler)
	admin.POST("/categories", catalogH.CreateCategoryHandler)
	admin.DELETE("/categories/:id", catalogH.DeleteCategoryHandler)
	admin.POST("/consultants", consultantH.CreateConsultantHandler)
	admin.PUT("/consultants/:id/availability", consultantH.ReplaceAvailabilityHandler)
	admin.POST("/consultants/:id/availability/retry", consultantH.RetryAvailabilityHandler)
	admin.POST("/products", productH.CreateProductHandler)
	admin.POST("/products/form/edit", productH.EditProductFormHandler)
	admin.GET("/users", middleware.RequireSuperAdmin(), usersH.ListUsersHandler)
	r.POST("/api/landing/bookings", landingH.BookHandler)

	return &harness{t: t, backend: srv, router: r}
}

func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *harness) login() string {
	h.t.Helper()
	w := h.do(jsonRequest(http.MethodPost, "/admin/session", "", gin.H{"token": backendtest.Token}))
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())
	id := w.Header().Get(middleware.SessionHeader)
	require.NotEmpty(h.t, id)
	return id
}

func jsonRequest(method, path, sessionID string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestSessionLifecycle(t *testing.T) {
	h := newHarness(t)

	w := h.do(jsonRequest(http.MethodPost, "/admin/session", "", gin.H{"token": "not-a-real-token"}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	id := h.login()
	w = h.do(jsonRequest(http.MethodGet, "/admin/session", id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "admin", body["username"])
	assert.NotContains(t, body, "token")

	w = h.do(jsonRequest(http.MethodDelete, "/admin/session", id, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = h.do(jsonRequest(http.MethodGet, "/admin/session", id, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	h := newHarness(t)
	id := h.login()
	ids := h.backend.Seed("/api/categories", map[string]any{"name": "Therapy"})

	w := h.do(jsonRequest(http.MethodDelete, fmt.Sprintf("/admin/categories/%d", ids[0]), id, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, h.backend.Count(http.MethodDelete, "/api/categories"))

	w = h.do(jsonRequest(http.MethodDelete, fmt.Sprintf("/admin/categories/%d?confirm=true", ids[0]), id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeBody(t, w)["total"])
	assert.Empty(t, h.backend.Records("/api/categories"))
}

func TestListIsSearchedAndPaged(t *testing.T) {
	h := newHarness(t)
	id := h.login()
	for i := 1; i <= 12; i++ {
		h.backend.Seed("/api/categories", map[string]any{"name": fmt.Sprintf("Category %02d", i)})
	}

	w := h.do(jsonRequest(http.MethodGet, "/admin/categories?page=2", id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 12, body["total"])
	assert.EqualValues(t, 2, body["total_pages"])
	assert.Len(t, body["rows"], 2)

	w = h.do(jsonRequest(http.MethodGet, "/admin/categories?q=category+07", id, nil))
	assert.EqualValues(t, 1, decodeBody(t, w)["total"])

	w = h.do(jsonRequest(http.MethodGet, "/admin/categories?sort=name&order=desc", id, nil))
	rows := decodeBody(t, w)["rows"].([]any)
	assert.Equal(t, "Category 12", rows[0].(map[string]any)["name"])

	w = h.do(jsonRequest(http.MethodGet, "/admin/categories?sort=name&order=asc&page=2&toggle=name", id, nil))
	body = decodeBody(t, w)
	assert.EqualValues(t, 1, body["page"])
	assert.Equal(t, "desc", body["order"])
	rows = body["rows"].([]any)
	assert.Equal(t, "Category 12", rows[0].(map[string]any)["name"])
}

func TestValidationErrorNamesField(t *testing.T) {
	h := newHarness(t)
	id := h.login()

	form := gin.H{"name": "Asha", "username": "asha", "email": "asha@example.com", "phone": "555"}
	w := h.do(jsonRequest(http.MethodPost, "/admin/consultants", id, form))
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "email", body["field"])
	assert.Equal(t, "Please use a Gmail address so meeting invites can be delivered", body["error"])
	assert.Equal(t, 0, h.backend.Count(http.MethodPost, "/api/consultants"))
}

func TestRejectedTokenEndsSession(t *testing.T) {
	h := newHarness(t)
	id := h.login()
	h.backend.Tokens[backendtest.Token] = false

	w := h.do(jsonRequest(http.MethodGet, "/admin/categories", id, nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "session expired", decodeBody(t, w)["error"])

	w = h.do(jsonRequest(http.MethodGet, "/admin/session", id, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUsersNeedSuperAdmin(t *testing.T) {
	h := newHarness(t)
	h.backend.Profile = map[string]any{"id": 2, "username": "asha", "role": models.RoleConsultant}
	id := h.login()

	w := h.do(jsonRequest(http.MethodGet, "/admin/users", id, nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, h.backend.Count(http.MethodGet, "/api/users"))
}

func TestPartialSlotReplacementReportsAndRetries(t *testing.T) {
	h := newHarness(t)
	id := h.login()
	cid := h.backend.Seed("/api/consultants", map[string]any{"name": "Asha", "email": "asha@gmail.com"})[0]
	slotPath := fmt.Sprintf("/api/consultants/%d/availability", cid)
	h.backend.Seed(slotPath,
		map[string]any{"date": "2026-10-20", "start_time": "09:00"},
		map[string]any{"date": "2026-10-21", "start_time": "10:00"},
	)
	h.backend.FailAfter(http.MethodDelete, slotPath, 1, http.StatusInternalServerError)

	drafts := gin.H{"slots": []models.SlotDraft{{Date: "2026-10-22", Time: "11:00"}}}
	w := h.do(jsonRequest(http.MethodPut, fmt.Sprintf("/admin/consultants/%d/availability", cid), id, drafts))
	require.Equal(t, http.StatusBadGateway, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, models.PhaseDeleting, body["phase"])
	assert.EqualValues(t, 1, body["deleted"])
	assert.EqualValues(t, 0, body["created"])
	assert.NotEmpty(t, body["journal_id"])

	h.backend.ClearFailures()
	w = h.do(jsonRequest(http.MethodPost, fmt.Sprintf("/admin/consultants/%d/availability/retry", cid), id, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.ReplaceDone, decodeBody(t, w)["status"])

	records := h.backend.Records(slotPath)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-10-22", records[0]["date"])
}

func TestRetryWithoutFailureIsNotFound(t *testing.T) {
	h := newHarness(t)
	id := h.login()

	w := h.do(jsonRequest(http.MethodPost, "/admin/consultants/9/availability/retry", id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductFormEdit(t *testing.T) {
	h := newHarness(t)
	id := h.login()

	form := models.NewProductForm()
	form.AddSection(models.CurriculumSection{Name: "Intro"})
	w := h.do(jsonRequest(http.MethodPost, "/admin/products/form/edit", id, gin.H{
		"form": form,
		"edit": gin.H{"list": "lectures", "op": "add", "section": 0, "value": "Body scan"},
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Form models.ProductForm `json:"form"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Body scan"}, body.Form.Course.Curriculum[0].Items)

	w = h.do(jsonRequest(http.MethodPost, "/admin/products/form/edit", id, gin.H{
		"form": form,
		"edit": gin.H{"list": "chapters", "op": "add"},
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "list", decodeBody(t, w)["field"])
	assert.Zero(t, h.backend.Count(http.MethodPost, "/api/products"))
}

func TestProductMultipartUpload(t *testing.T) {
	h := newHarness(t)
	id := h.login()

	form := models.NewProductForm()
	form.Title = "Calm Mind"
	form.Description = "Six weeks of practice"
	form.Price = 49
	form.Course.VideoURL = "https://video.example.test/calm"
	payload, err := json.Marshal(form)
	require.NoError(t, err)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("payload", string(payload)))
	part, err := mw.CreateFormFile("thumbnail", "calm.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("PNG"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.SessionHeader, id)

	w := h.do(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decodeBody(t, w)["total"])

	var sent backendtest.Request
	for _, r := range h.backend.Requests() {
		if r.Method == http.MethodPost && r.Path == "/api/products" {
			sent = r
		}
	}
	assert.Equal(t, "calm.png", sent.Files["thumbnail"])
	assert.Equal(t, "Calm Mind", sent.Body["title"])
}

func TestProductWithoutThumbnailIsRejected(t *testing.T) {
	h := newHarness(t)
	id := h.login()

	form := models.NewProductForm()
	form.Title = "Calm Mind"
	form.Description = "Six weeks of practice"
	form.Price = 49
	form.Course.VideoURL = "https://video.example.test/calm"

	w := h.do(jsonRequest(http.MethodPost, "/admin/products", id, form))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "thumbnail", decodeBody(t, w)["field"])
}

func TestLandingBooking(t *testing.T) {
	h := newHarness(t)

	w := h.do(jsonRequest(http.MethodPost, "/api/landing/bookings", "", gin.H{"email": "a@b.c"}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name", decodeBody(t, w)["field"])

	req := gin.H{
		"name": "Sam", "email": "sam@example.com", "phone": "555",
		"consultant_id": "1", "date": "2026-10-20", "time": "10:00",
	}
	w = h.do(jsonRequest(http.MethodPost, "/api/landing/bookings", "", req))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["submitted"])

	for _, email := range []string{"a@", "@b", "x y@z"} {
		req["email"] = email
		w = h.do(jsonRequest(http.MethodPost, "/api/landing/bookings", "", req))
		require.Equal(t, http.StatusBadRequest, w.Code, email)
		body := decodeBody(t, w)
		assert.Equal(t, "email", body["field"], email)
		assert.Equal(t, "a valid email is required", body["error"], email)
	}
}

func TestBindingTagNamesJSONField(t *testing.T) {
	h := newHarness(t)
	id := h.login()

	w := h.do(jsonRequest(http.MethodPost, "/admin/categories", id, gin.H{"name": ""}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "name", body["field"])
	assert.Equal(t, "name is required", body["error"])

	assert.Zero(t, h.backend.Count(http.MethodPost, "/api/categories"))

	w = h.do(jsonRequest(http.MethodPost, "/admin/session", "", gin.H{}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "token", decodeBody(t, w)["field"])
}
