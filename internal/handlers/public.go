package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"

	"SiteCMS/internal/models"
)

/* ========= ПУБЛИЧНЫЕ СТРАНИЦЫ ========= */

func (h *Handlers) ShowIndexPage(w http.ResponseWriter, r *http.Request) {
	c, err := h.Content.Get(r.Context(), models.PageMain)
	if err != nil {
		serverError(w, err)
		return
	}
	h.Views.Render(w, r, http.StatusOK, "index.html", map[string]any{
		"Title":   models.MainPage.Title,
		"Content": c,
	})
}

func (h *Handlers) ShowAboutPage(w http.ResponseWriter, r *http.Request) {
	c, err := h.Content.Get(r.Context(), models.PageAbout)
	if err != nil {
		serverError(w, err)
		return
	}
	h.Views.Render(w, r, http.StatusOK, "about.html", map[string]any{
		"Title":   models.AboutPage.Title,
		"Content": c,
	})
}

// DebugAbout отдаёт все строки about_page_content как JSON. Только при debug.
func (h *Handlers) DebugAbout(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Content.Rows(r.Context(), models.PageAbout)
	if err != nil {
		log.Printf("debug about: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"rowCount": len(rows),
		"rows":     rows,
	})
}

/* ========= ОШИБКИ ========= */

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Views.Render(w, r, http.StatusNotFound, "404.html", map[string]any{"Title": "Not Found"})
}

// Forbidden: роль ниже нужной.
func (h *Handlers) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.Views.Render(w, r, http.StatusForbidden, "error_role.html", map[string]any{"Title": "Access Denied"})
}

// Recoverer ловит панику в обработчике и отдаёт страницу 500.
func (h *Handlers) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Printf("panic: %v\n%s", rec, debug.Stack())
			h.Views.Render(w, r, http.StatusInternalServerError, "500.html", map[string]any{"Title": "Server Error"})
		}()
		next.ServeHTTP(w, r)
	})
}
