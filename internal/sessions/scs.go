package sessions

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"SiteCMS/internal/config"
	"SiteCMS/internal/db"
	"SiteCMS/internal/models"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
)

// ServerManager: сессии на сервере (scs): в куке только непрозрачный токен.
type ServerManager struct {
	sm *scs.SessionManager
}

// NewMemory: сессии живут, пока жив процесс.
func NewMemory(cfg config.Session) *ServerManager {
	return newServer(memstore.New(), cfg)
}

// NewDatabase хранит сессии в таблице sessions.
func NewDatabase(cfg config.Session, d *db.DB) (*ServerManager, error) {
	var store scs.Store
	switch d.Dialect {
	case db.Postgres:
		if _, err := d.Exec(`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BYTEA NOT NULL,
			expiry TIMESTAMPTZ NOT NULL
		)`); err != nil {
			return nil, fmt.Errorf("sessions: create table: %w", err)
		}
		if _, err := d.Exec(`CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry)`); err != nil {
			return nil, fmt.Errorf("sessions: create index: %w", err)
		}
		store = postgresstore.New(d.DB)
	case db.SQLite:
		if _, err := d.Exec(`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		)`); err != nil {
			return nil, fmt.Errorf("sessions: create table: %w", err)
		}
		if _, err := d.Exec(`CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry)`); err != nil {
			return nil, fmt.Errorf("sessions: create index: %w", err)
		}
		store = sqlite3store.New(d.DB)
	default:
		return nil, fmt.Errorf("sessions: no session store for dialect %q", d.Dialect)
	}
	return newServer(store, cfg), nil
}

func newServer(store scs.Store, cfg config.Session) *ServerManager {
	sm := scs.New()
	sm.Store = store
	sm.Lifetime = cfg.Lifetime
	sm.IdleTimeout = 12 * time.Hour
	sm.Cookie.Name = sessionName
	sm.Cookie.Path = "/"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode // кука по GET тоже отправится
	sm.Cookie.Secure = cfg.Secure            // локально false, за HTTPS-прокси true
	return &ServerManager{sm: sm}
}

func (m *ServerManager) Attach(next http.Handler) http.Handler {
	return m.sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a, ok := m.load(r.Context()); ok {
			r = r.WithContext(WithAdmin(r.Context(), a))
		}
		next.ServeHTTP(w, r)
	}))
}

func (m *ServerManager) load(ctx context.Context) (models.Admin, bool) {
	username := m.sm.GetString(ctx, keyUsername)
	if username == "" {
		return models.Admin{}, false
	}
	return models.Admin{
		ID:       m.sm.GetInt64(ctx, keyAdminID),
		Username: username,
		Role:     m.sm.GetInt(ctx, keyRole),
	}, true
}

// Bind выдаёт новый токен (защита от фиксации сессии) и запоминает администратора.
func (m *ServerManager) Bind(w http.ResponseWriter, r *http.Request, a models.Admin) error {
	ctx := r.Context()
	if err := m.sm.RenewToken(ctx); err != nil {
		return err
	}
	m.sm.Put(ctx, keyAdminID, a.ID)
	m.sm.Put(ctx, keyUsername, a.Username)
	m.sm.Put(ctx, keyRole, a.Role)
	return nil
}

func (m *ServerManager) Destroy(w http.ResponseWriter, r *http.Request) error {
	return m.sm.Destroy(r.Context())
}
