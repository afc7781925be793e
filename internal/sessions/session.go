package sessions

import (
	"context"
	"fmt"
	"net/http"

	"SiteCMS/internal/config"
	"SiteCMS/internal/db"
	"SiteCMS/internal/models"
)

const sessionName = "admin_session"

// ключи внутри сессии
const (
	keyAdminID  = "admin_id"
	keyUsername = "admin_username"
	keyRole     = "admin_role"
)

// Manager выдаёт и проверяет сессию браузера.
// Attach кладёт снимок администратора из сессии в контекст запроса;
// роль запоминается при входе и до повторного входа не обновляется.
type Manager interface {
	Attach(next http.Handler) http.Handler
	Bind(w http.ResponseWriter, r *http.Request, a models.Admin) error
	// Destroy идемпотентен: отсутствие сессии не ошибка.
	Destroy(w http.ResponseWriter, r *http.Request) error
}

type ctxKey struct{}

func WithAdmin(ctx context.Context, a models.Admin) context.Context {
	return context.WithValue(ctx, ctxKey{}, a.Snapshot())
}

// AdminFromContext возвращает администратора, привязанного к текущему запросу.
func AdminFromContext(ctx context.Context) (models.Admin, bool) {
	a, ok := ctx.Value(ctxKey{}).(models.Admin)
	return a, ok
}

// New выбирает хранилище сессий по конфигурации.
// database: таблица sessions в той же базе, что и контент.
func New(cfg config.Session, d *db.DB) (Manager, error) {
	switch cfg.Store {
	case config.SessionStoreMemory, "":
		return NewMemory(cfg), nil
	case config.SessionStoreDatabase:
		if d == nil {
			return nil, fmt.Errorf("sessions: %s store needs a database", cfg.Store)
		}
		return NewDatabase(cfg, d)
	case config.SessionStoreCookie:
		return NewCookie(cfg), nil
	}
	return nil, fmt.Errorf("sessions: unknown store %q", cfg.Store)
}
