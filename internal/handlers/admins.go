package handlers

import (
	"errors"
	"log"
	"net/http"

	"SiteCMS/internal/metrics"
	"SiteCMS/internal/service"
	"SiteCMS/internal/sessions"
)

const (
	msgAllFieldsRequired = "All fields are required"
	msgFailedToAdd       = "Failed to add admin"
	msgSelfDeletion      = "You cannot delete yourself"
	msgDatabaseError     = "Database error"
	msgAdminNotFound     = "Admin not found or password incorrect"
)

/* ========= АДМИНИСТРАТОРЫ ========= */

func (h *Handlers) ShowAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.Admins.List(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}
	h.Views.Render(w, r, http.StatusOK, "admins.html", map[string]any{
		"Title":  "Administrators",
		"Admins": admins,
	})
}

func (h *Handlers) ShowAddAdminForm(w http.ResponseWriter, r *http.Request) {
	h.renderAddAdmin(w, r, "")
}

func (h *Handlers) renderAddAdmin(w http.ResponseWriter, r *http.Request, errMsg string) {
	h.Views.Render(w, r, http.StatusOK, "add_admin.html", map[string]any{
		"Title": "Add New Admin",
		"Error": errMsg,
	})
}

// HandleAddAdmin создаёт администратора. Неверная роль и занятый логин
// выглядят так же, как любая ошибка БД.
func (h *Handlers) HandleAddAdmin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderAddAdmin(w, r, msgAllFieldsRequired)
		return
	}

	err := h.Admins.Create(r.Context(),
		r.PostForm.Get("username"),
		r.PostForm.Get("password"),
		r.PostForm.Get("role"),
	)
	switch {
	case err == nil:
		metrics.AdminChanges.WithLabelValues("create", "ok").Inc()
		http.Redirect(w, r, "/addAdmin", http.StatusFound)
	case errors.Is(err, service.ErrValidation):
		metrics.AdminChanges.WithLabelValues("create", "invalid").Inc()
		h.renderAddAdmin(w, r, msgAllFieldsRequired)
	default:
		log.Printf("add admin: %v", err)
		metrics.AdminChanges.WithLabelValues("create", "error").Inc()
		h.renderAddAdmin(w, r, msgFailedToAdd)
	}
}

func (h *Handlers) ShowDeleteAdminForm(w http.ResponseWriter, r *http.Request) {
	h.renderDeleteAdmin(w, r, "")
}

func (h *Handlers) renderDeleteAdmin(w http.ResponseWriter, r *http.Request, errMsg string) {
	h.Views.Render(w, r, http.StatusOK, "delete_admin.html", map[string]any{
		"Title": "Delete Admin",
		"Error": errMsg,
	})
}

// HandleDeleteAdmin удаляет администратора по логину и паролю; себя нельзя.
func (h *Handlers) HandleDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderDeleteAdmin(w, r, msgCredentialsRequired)
		return
	}

	caller, _ := sessions.AdminFromContext(r.Context())
	err := h.Admins.Delete(r.Context(), caller,
		r.PostForm.Get("username"),
		r.PostForm.Get("password"),
	)
	switch {
	case err == nil:
		metrics.AdminChanges.WithLabelValues("delete", "ok").Inc()
		http.Redirect(w, r, "/deleteAdmin", http.StatusFound)
	case errors.Is(err, service.ErrSelfDeletion):
		metrics.AdminChanges.WithLabelValues("delete", "self").Inc()
		h.renderDeleteAdmin(w, r, msgSelfDeletion)
	case errors.Is(err, service.ErrValidation):
		metrics.AdminChanges.WithLabelValues("delete", "invalid").Inc()
		h.renderDeleteAdmin(w, r, msgCredentialsRequired)
	case errors.Is(err, service.ErrNotFound):
		metrics.AdminChanges.WithLabelValues("delete", "not_found").Inc()
		h.renderDeleteAdmin(w, r, msgAdminNotFound)
	default:
		log.Printf("delete admin: %v", err)
		metrics.AdminChanges.WithLabelValues("delete", "error").Inc()
		h.renderDeleteAdmin(w, r, msgDatabaseError)
	}
}
