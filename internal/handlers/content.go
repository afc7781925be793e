package handlers

import (
	"net/http"

	"SiteCMS/internal/metrics"
	"SiteCMS/internal/models"
)

/* ========= РЕДАКТИРОВАНИЕ СТРАНИЦ ========= */

// ShowEditPage показывает форму со всеми полями страницы pageKey; форма уходит на action.
func (h *Handlers) ShowEditPage(pageKey, action string) http.HandlerFunc {
	p := models.Pages[pageKey]
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.Content.Get(r.Context(), pageKey)
		if err != nil {
			serverError(w, err)
			return
		}
		h.Views.Render(w, r, http.StatusOK, "edit_page.html", map[string]any{
			"Title":   "Edit " + p.Title,
			"Page":    p,
			"Action":  action,
			"Content": c,
		})
	}
}

// HandleEditPage перезаписывает строку страницы целиком значениями из формы
// и возвращает на форму редактирования.
func (h *Handlers) HandleEditPage(pageKey, action string) http.HandlerFunc {
	p := models.Pages[pageKey]
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad form", http.StatusBadRequest)
			return
		}

		// имена полей формы отличаются от колонок (h1About -> h1about)
		fields := make(models.Content, len(p.Fields))
		for _, f := range p.Fields {
			fields[f.Column] = r.PostForm.Get(f.Form)
		}

		if err := h.Content.Update(r.Context(), pageKey, fields); err != nil {
			metrics.ContentUpdates.WithLabelValues(pageKey, "error").Inc()
			serverError(w, err)
			return
		}
		metrics.ContentUpdates.WithLabelValues(pageKey, "ok").Inc()
		http.Redirect(w, r, action, http.StatusFound)
	}
}
