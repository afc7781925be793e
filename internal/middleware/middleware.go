package middleware

import (
	"net/http"

	"SiteCMS/internal/metrics"
	"SiteCMS/internal/sessions"
)

// LoginPath: куда отправляем без сессии.
const LoginPath = "/login"

// RequireAuthenticated пропускает только запросы с привязанным администратором,
// остальных перенаправляет на форму входа.
// Позволяет писать: g.Use(middleware.RequireAuthenticated)
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessions.AdminFromContext(r.Context()); !ok {
			metrics.AccessDenied.WithLabelValues("unauthenticated").Inc()
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole пропускает, если роль администратора >= min, иначе отдаёт forbidden
// (он сам пишет статус 403 и страницу). Ставится после RequireAuthenticated;
// без сессии тоже отказ.
func RequireRole(min int, forbidden http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, ok := sessions.AdminFromContext(r.Context())
			if !ok || !a.HasRole(min) {
				metrics.AccessDenied.WithLabelValues("forbidden").Inc()
				forbidden.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
