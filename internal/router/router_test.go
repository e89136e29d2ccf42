package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"clinic-cms/internal/auth"
	"clinic-cms/internal/docstore"
	"clinic-cms/internal/handler"
	"clinic-cms/internal/model"
	"clinic-cms/internal/notify"
	"clinic-cms/internal/repository"
	"clinic-cms/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-test-secret"

type testServer struct {
	handler http.Handler
	tokens  *auth.TokenManager
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()

	logger := zerolog.Nop()
	store := docstore.NewMemoryStore()
	tokens := auth.NewTokenManager(testSecret, time.Hour)
	const listLimit = 1000

	h := Handlers{
		Health: handler.NewHealthHandler("Swayambhu Ayurveda API", store, logger),
		Admin: handler.NewAdminHandler(
			service.NewAdminService(repository.NewAdminRepository(store, logger), tokens, logger), logger),
		Product: handler.NewProductHandler(
			service.NewProductService(repository.NewProductRepository(store, logger), listLimit, logger), logger),
		Blog: handler.NewBlogHandler(
			service.NewBlogService(repository.NewBlogRepository(store, logger), listLimit, logger), logger),
		Testimonial: handler.NewTestimonialHandler(
			service.NewTestimonialService(repository.NewTestimonialRepository(store, logger), listLimit, logger), logger),
		Appointment: handler.NewAppointmentHandler(
			service.NewAppointmentService(repository.NewAppointmentRepository(store, logger), notify.Nop(), listLimit, logger), logger),
		Gallery: handler.NewGalleryHandler(
			service.NewGalleryService(repository.NewGalleryRepository(store, logger), listLimit, logger), logger),
		Contact: handler.NewContactHandler(
			service.NewContactService(repository.NewContactRepository(store, logger), notify.Nop(), listLimit, logger), logger),
	}

	opts.Verifier = tokens
	if opts.AllowedOrigins == nil {
		opts.AllowedOrigins = []string{"*"}
	}

	return &testServer{handler: New(h, opts, logger), tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	token, err := s.tokens.Issue("admin@example.com", "admin-1")
	require.NoError(t, err)
	return token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func productPayload(name, category string) map[string]any {
	return map[string]any{
		"name":        name,
		"category":    category,
		"description": "Classical formulation",
		"ingredients": "Amalaki, Bibhitaki, Haritaki",
		"uses":        "Digestion",
		"benefits":    "Gentle detox",
		"how_to_use":  "1 tsp with warm water",
		"price":       250,
		"image":       "https://example.com/triphala.jpg",
	}
}

func TestRouter_Liveness(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: true, RegistrationOpen: true})

	w := s.do(t, http.MethodGet, "/api/", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Swayambhu Ayurveda API"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ProductRoundTrip(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: true, RegistrationOpen: true})
	token := s.adminToken(t)

	w := s.do(t, http.MethodPost, "/api/products", productPayload("Triphala Churna", "Herbal"), token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	created := decode[map[string]any](t, w)
	id, _ := created["id"].(string)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "id should be UUID-shaped")
	assert.Equal(t, true, created["in_stock"])
	_, err = time.Parse(time.RFC3339Nano, created["created_at"].(string))
	assert.NoError(t, err)

	w = s.do(t, http.MethodGet, "/api/products/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[map[string]any](t, w))

	update := productPayload("Triphala Churna 200g", "Herbal")
	update["in_stock"] = false
	w = s.do(t, http.MethodPut, "/api/products/"+id, update, token)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[map[string]any](t, w)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, created["created_at"], updated["created_at"])
	assert.Equal(t, false, updated["in_stock"])

	w = s.do(t, http.MethodDelete, "/api/products/"+id, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, w.Body.String())

	w = s.do(t, http.MethodDelete, "/api/products/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/products/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_DefaultOptionsLeaveContentOpen(t *testing.T) {
	// Zero-value auth options match the default configuration.
	s := newTestServer(t, Options{RegistrationOpen: true})

	w := s.do(t, http.MethodPost, "/api/products", productPayload("Triphala Churna", "Herbal"), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	created := decode[map[string]any](t, w)
	_, err := uuid.Parse(created["id"].(string))
	assert.NoError(t, err)
	assert.Equal(t, true, created["in_stock"])

	w = s.do(t, http.MethodGet, "/api/appointments", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_EmptyStringsAreStored(t *testing.T) {
	s := newTestServer(t, Options{})

	payload := productPayload("Triphala Churna", "Herbal")
	payload["ingredients"] = ""
	w := s.do(t, http.MethodPost, "/api/products", payload, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	created := decode[map[string]any](t, w)
	assert.Equal(t, "", created["ingredients"])

	w = s.do(t, http.MethodGet, "/api/products/"+created["id"].(string), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", decode[map[string]any](t, w)["ingredients"])

	contact := map[string]any{
		"name": "Ravi", "email": "ravi@example.com", "phone": "", "subject": "Hi", "message": "Hello",
	}
	w = s.do(t, http.MethodPost, "/api/contact", contact, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "", decode[map[string]any](t, w)["phone"])

	tests := []struct {
		name   string
		mutate func(map[string]any)
		detail string
	}{
		{name: "missing", mutate: func(p map[string]any) { delete(p, "ingredients") }, detail: "ingredients is required"},
		{name: "null", mutate: func(p map[string]any) { p["ingredients"] = nil }, detail: "ingredients is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := productPayload("Triphala Churna", "Herbal")
			tt.mutate(p)

			w := s.do(t, http.MethodPost, "/api/products", p, "")
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, tt.detail, decode[model.ErrorResponse](t, w).Detail)
		})
	}
}

func TestRouter_CategoryFilter(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: false})

	for _, p := range []map[string]any{
		productPayload("Triphala", "Herbal"),
		productPayload("Mahanarayan Taila", "Oil"),
		productPayload("Ashwagandha", "Herbal"),
	} {
		require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/products", p, "").Code)
	}

	herbal := decode[[]model.Product](t, s.do(t, http.MethodGet, "/api/products?category=Herbal", nil, ""))
	require.Len(t, herbal, 2)
	for _, p := range herbal {
		assert.Equal(t, "Herbal", p.Category)
	}

	all := decode[[]model.Product](t, s.do(t, http.MethodGet, "/api/products", nil, ""))
	assert.Len(t, all, 3)
	assert.Equal(t, "Triphala", all[0].Name)

	limited := decode[[]model.Product](t, s.do(t, http.MethodGet, "/api/products?limit=1", nil, ""))
	assert.Len(t, limited, 1)
}

func TestRouter_BlogsListOnlyPublished(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: false})

	blog := func(slug string, published bool) map[string]any {
		return map[string]any{
			"title": slug, "slug": slug, "category": "Lifestyle", "excerpt": "e",
			"content": "c", "image": "https://example.com/b.jpg", "published": published,
		}
	}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/blogs", blog("live", true), "").Code)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/blogs", blog("draft", false), "").Code)

	blogs := decode[[]model.Blog](t, s.do(t, http.MethodGet, "/api/blogs", nil, ""))
	require.Len(t, blogs, 1)
	assert.Equal(t, "live", blogs[0].Slug)
	assert.Equal(t, model.DefaultBlogAuthor, blogs[0].Author)

	w := s.do(t, http.MethodGet, "/api/blogs/draft", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[model.Blog](t, w).Published)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/blogs/missing", nil, "").Code)
}

func TestRouter_AppointmentStatus(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: true, RegistrationOpen: true})
	token := s.adminToken(t)

	w := s.do(t, http.MethodPost, "/api/appointments", map[string]any{
		"name": "Asha", "email": "asha@example.com", "phone": "9999999999",
		"appointment_type": "panchakarma", "preferred_date": "2024-05-01",
		"preferred_time": "10:00", "condition": "Back pain",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	appt := decode[model.Appointment](t, w)
	assert.Equal(t, model.StatusPending, appt.Status)

	w = s.do(t, http.MethodPut, "/api/appointments/"+appt.ID+"/status?status=confirmed", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[[]model.Appointment](t, s.do(t, http.MethodGet, "/api/appointments?status=confirmed", nil, token))
	require.Len(t, list, 1)
	assert.Equal(t, appt.ID, list[0].ID)

	w = s.do(t, http.MethodPut, "/api/appointments/missing/status?status=confirmed", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/appointments?status=archived", nil, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "status must be one of: pending, confirmed, completed, cancelled",
		decode[model.ErrorResponse](t, w).Detail)

	all := decode[[]model.Appointment](t, s.do(t, http.MethodGet, "/api/appointments", nil, token))
	assert.Len(t, all, 1)

	w = s.do(t, http.MethodPut, "/api/appointments/"+appt.ID+"/status?status=archived", nil, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_EnumValidation(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: false})

	w := s.do(t, http.MethodPost, "/api/gallery", map[string]any{
		"title": "Team", "category": "staff", "image": "https://example.com/t.jpg",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[model.ErrorResponse](t, w)
	assert.Equal(t, model.ErrCodeValidation, body.Error)
	assert.NotEmpty(t, body.CorrelationID)

	gallery := decode[[]model.GalleryImage](t, s.do(t, http.MethodGet, "/api/gallery", nil, ""))
	assert.Empty(t, gallery)
}

func TestRouter_DeleteMissingIsNotFound(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: false})

	for _, path := range []string{
		"/api/products/nope",
		"/api/blogs/nope",
		"/api/testimonials/nope",
		"/api/gallery/nope",
	} {
		t.Run(path, func(t *testing.T) {
			w := s.do(t, http.MethodDelete, path, nil, "")
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, model.ErrCodeNotFound, decode[model.ErrorResponse](t, w).Error)
		})
	}
}

func TestRouter_AuthGuard(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: true, RegistrationOpen: true})

	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		expectedStatus int
	}{
		{name: "Public product list", method: http.MethodGet, path: "/api/products", expectedStatus: http.StatusOK},
		{name: "Product create needs token", method: http.MethodPost, path: "/api/products", body: productPayload("x", "y"), expectedStatus: http.StatusUnauthorized},
		{name: "Blog delete needs token", method: http.MethodDelete, path: "/api/blogs/b1", expectedStatus: http.StatusUnauthorized},
		{name: "Testimonial update needs token", method: http.MethodPut, path: "/api/testimonials/t1", body: map[string]any{}, expectedStatus: http.StatusUnauthorized},
		{name: "Gallery create needs token", method: http.MethodPost, path: "/api/gallery", body: map[string]any{}, expectedStatus: http.StatusUnauthorized},
		{name: "Appointment list needs token", method: http.MethodGet, path: "/api/appointments", expectedStatus: http.StatusUnauthorized},
		{name: "Appointment status needs token", method: http.MethodPut, path: "/api/appointments/a1/status?status=confirmed", expectedStatus: http.StatusUnauthorized},
		{name: "Contact list needs token", method: http.MethodGet, path: "/api/contact", expectedStatus: http.StatusUnauthorized},
		{
			name: "Contact submit is public", method: http.MethodPost, path: "/api/contact",
			body: map[string]any{
				"name": "Ravi", "email": "ravi@example.com", "phone": "1", "subject": "Hi", "message": "Hello",
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.body, "")
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}

	t.Run("Valid token passes", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/contact", nil, s.adminToken(t))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]model.ContactSubmission](t, w), 1)
	})
}

func postForm(s *testServer, path string, values url.Values, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func TestRouter_AdminFlow(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: true, RegistrationOpen: true})
	creds := url.Values{"email": {"doc@example.com"}, "password": {"s3cret"}, "name": {"Doc"}}

	w := postForm(s, "/api/admin/register", creds, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	registered := decode[model.AuthResponse](t, w)
	assert.NotContains(t, w.Body.String(), "password")

	w = postForm(s, "/api/admin/register", creds, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.ErrCodeConflict, decode[model.ErrorResponse](t, w).Error)

	w = postForm(s, "/api/admin/login", url.Values{"email": {"doc@example.com"}, "password": {"wrong"}}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postForm(s, "/api/admin/login", url.Values{"email": {"nobody@example.com"}, "password": {"s3cret"}}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postForm(s, "/api/admin/login", url.Values{"email": {"doc@example.com"}, "password": {"s3cret"}}, "")
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[model.AuthResponse](t, w)

	claims, err := s.tokens.Parse(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "doc@example.com", claims.Email)
	assert.Equal(t, registered.Admin.ID, claims.ID)

	// the issued token unlocks guarded routes
	w = s.do(t, http.MethodPost, "/api/products", productPayload("Triphala", "Herbal"), login.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ClosedRegistration(t *testing.T) {
	s := newTestServer(t, Options{EnforceAuth: true, RegistrationOpen: false})
	creds := url.Values{"email": {"doc@example.com"}, "password": {"s3cret"}, "name": {"Doc"}}

	assert.Equal(t, http.StatusUnauthorized, postForm(s, "/api/admin/register", creds, "").Code)
	assert.Equal(t, http.StatusOK, postForm(s, "/api/admin/register", creds, s.adminToken(t)).Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	s := newTestServer(t, Options{AllowedOrigins: []string{"https://clinic.example"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://clinic.example")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://clinic.example", w.Header().Get("Access-Control-Allow-Origin"))
}
