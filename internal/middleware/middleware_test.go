package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"SiteCMS/internal/metrics"
	"SiteCMS/internal/models"
	"SiteCMS/internal/sessions"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reached: обработчик, который запоминает, что до него дошли.
func reached(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

var forbidden = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "insufficient role", http.StatusForbidden)
})

func request(a *models.Admin) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/editMainPage", nil)
	if a != nil {
		req = req.WithContext(sessions.WithAdmin(req.Context(), *a))
	}
	return req
}

func TestRequireAuthenticated(t *testing.T) {
	var hit bool
	h := RequireAuthenticated(reached(&hit))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, request(nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	assert.False(t, hit)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, request(&models.Admin{Username: "u", Role: models.RoleDefault}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name   string
		admin  *models.Admin
		min    int
		status int
	}{
		{"no session", nil, models.RoleEditor, http.StatusForbidden},
		{"role 1 on editor route", &models.Admin{Username: "a", Role: 1}, models.RoleEditor, http.StatusForbidden},
		{"role 2 on editor route", &models.Admin{Username: "a", Role: 2}, models.RoleEditor, http.StatusOK},
		{"role 3 on editor route", &models.Admin{Username: "a", Role: 3}, models.RoleEditor, http.StatusOK},
		{"role 2 on super route", &models.Admin{Username: "a", Role: 2}, models.RoleSuper, http.StatusForbidden},
		{"role 3 on super route", &models.Admin{Username: "a", Role: 3}, models.RoleSuper, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit bool
			rec := httptest.NewRecorder()
			RequireRole(tt.min, forbidden)(reached(&hit)).ServeHTTP(rec, request(tt.admin))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status == http.StatusOK, hit)
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
}

func TestBodyLimit(t *testing.T) {
	h := BodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a="+strings.Repeat("x", 64)))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestLoginRateLimit(t *testing.T) {
	h := LoginRateLimit(2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// у другого IP свой счётчик
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRateLimitDisabled(t *testing.T) {
	h := LoginRateLimit(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
