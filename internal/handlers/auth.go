package handlers

import (
	"errors"
	"log"
	"net/http"

	"SiteCMS/internal/metrics"
	"SiteCMS/internal/service"
	"SiteCMS/internal/sessions"
)

// Сообщения пользователю. Какая часть проверки не прошла, не раскрываем.
const (
	msgCredentialsRequired = "Username and password are required"
	msgInvalidCredentials  = "Invalid credentials"
)

// ShowLoginPage отображает страницу входа; уже вошедших отправляет в панель
func (h *Handlers) ShowLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessions.AdminFromContext(r.Context()); ok {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	h.renderLogin(w, r, "")
}

func (h *Handlers) renderLogin(w http.ResponseWriter, r *http.Request, errMsg string) {
	h.Views.Render(w, r, http.StatusOK, "login.html", map[string]any{
		"Title": "Login Page",
		"Error": errMsg,
	})
}

// HandleLogin обрабатывает POST-запрос входа администратора
func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, msgCredentialsRequired)
		return
	}

	admin, err := h.Auth.Authenticate(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	switch {
	case errors.Is(err, service.ErrValidation):
		h.renderLogin(w, r, msgCredentialsRequired)
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		h.renderLogin(w, r, msgInvalidCredentials)
		return
	case err != nil:
		// ошибка БД выглядит для пользователя так же, как неверный пароль
		log.Printf("login: %v", err)
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		h.renderLogin(w, r, msgInvalidCredentials)
		return
	}

	if err := h.Sessions.Bind(w, r, admin); err != nil {
		log.Printf("session save error: %v", err)
		serverError(w, err)
		return
	}
	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// HandleLogout удаляет сессию и возвращает на логин
func (h *Handlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(w, r); err != nil {
		log.Printf("logout: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handlers) ShowDashboard(w http.ResponseWriter, r *http.Request) {
	h.Views.Render(w, r, http.StatusOK, "admin.html", map[string]any{"Title": "Admin Panel"})
}
