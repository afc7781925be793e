// Package server собирает маршруты chi и запускает HTTP-сервер.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"SiteCMS/internal/handlers"
	mw "SiteCMS/internal/middleware"
	"SiteCMS/internal/models"
	"SiteCMS/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	MetricsEnabled bool
	Debug          bool
	LoginRateLimit int // попыток в минуту с одного IP
}

// NewRouter собирает все маршруты сайта.
func NewRouter(h *handlers.Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	// базовые middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(h.Recoverer)
	r.Use(mw.Metrics)
	r.Use(mw.SecurityHeaders)
	r.Use(mw.BodyLimit(mw.MaxFormSize))
	r.Use(middleware.RedirectSlashes) // /path/ -> /path
	r.Use(h.Sessions.Attach)

	r.NotFound(h.NotFound)

	// статика из встроенной web/static
	r.Handle("/static/*", http.FileServer(http.FS(web.FS)))

	if opts.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	if opts.Debug {
		r.Get("/debug/about", h.DebugAbout)
	}

	// ---------- Публичные страницы ----------
	r.Get("/", h.ShowIndexPage)
	r.Get("/about", h.ShowAboutPage)

	// ---------- Аутентификация ----------
	r.Get("/login", h.ShowLoginPage)
	r.With(mw.LoginRateLimit(opts.LoginRateLimit)).Post("/login", h.HandleLogin)
	r.Get("/logout", h.HandleLogout)

	// ---------- Админ-панель ----------
	forbidden := http.HandlerFunc(h.Forbidden)
	r.Group(func(g chi.Router) {
		g.Use(mw.RequireAuthenticated) // без сессии на /login

		g.Get("/admin", h.ShowDashboard)

		// редакторы контента
		g.Group(func(g chi.Router) {
			g.Use(mw.RequireRole(models.RoleEditor, forbidden))

			g.Get("/editMainPage", h.ShowEditPage(models.PageMain, "/editMainPage"))
			g.Post("/editMainPage", h.HandleEditPage(models.PageMain, "/editMainPage"))
			g.Get("/editAboutPage", h.ShowEditPage(models.PageAbout, "/editAboutPage"))
			g.Post("/editAboutPage", h.HandleEditPage(models.PageAbout, "/editAboutPage"))
		})

		// главный администратор
		g.Group(func(g chi.Router) {
			g.Use(mw.RequireRole(models.RoleSuper, forbidden))

			g.Get("/admins", h.ShowAdmins)
			g.Get("/addAdmin", h.ShowAddAdminForm)
			g.Post("/addAdmin", h.HandleAddAdmin)
			g.Get("/deleteAdmin", h.ShowDeleteAdminForm)
			g.Post("/deleteAdmin", h.HandleDeleteAdmin)
		})
	})

	return r
}

const shutdownTimeout = 5 * time.Second

// Run слушает addr, пока не отменят ctx, затем останавливает сервер,
// давая активным запросам до shutdownTimeout.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	return <-errCh
}
