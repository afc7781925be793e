package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"SiteCMS/internal/models"
	"SiteCMS/internal/sessions"
	"SiteCMS/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewsRenderAdminFromContext(t *testing.T) {
	v, err := NewViews(web.FS)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = req.WithContext(sessions.WithAdmin(req.Context(), models.Admin{Username: "ed1", Role: models.RoleEditor}))
	rec := httptest.NewRecorder()
	v.Render(rec, req, http.StatusOK, "admin.html", map[string]any{"Title": "Admin Panel"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Logout (ed1)")
	assert.Contains(t, body, `href="/editMainPage"`)
	assert.NotContains(t, body, `href="/admins"`, "role 2 does not see admin management")
}

func TestViewsUnknownTemplate(t *testing.T) {
	v, err := NewViews(web.FS)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	v.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "nope.html", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewViewsMissingTemplate(t *testing.T) {
	_, err := NewViews(fstest.MapFS{
		"templates/base.html": {Data: []byte(`{{define "base"}}{{template "content" .}}{{end}}`)},
	})
	assert.Error(t, err)
}

func TestRecovererRenders500(t *testing.T) {
	v, err := NewViews(web.FS)
	require.NoError(t, err)
	h := &Handlers{Views: v}

	panicky := h.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	panicky.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecovererRethrowsAbort(t *testing.T) {
	h := &Handlers{}
	aborting := h.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		aborting.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
