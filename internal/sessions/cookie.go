package sessions

import (
	"crypto/sha256"
	"net/http"

	"SiteCMS/internal/config"
	"SiteCMS/internal/models"

	"github.com/gorilla/sessions"
)

// CookieManager хранит снимок администратора в подписанной и зашифрованной куке.
type CookieManager struct {
	store *sessions.CookieStore
}

func NewCookie(cfg config.Session) *CookieManager {
	// Делаем 2 ключа: подпись + шифрование (устойчивее, чем только подпись).
	// Длины подходящие для securecookie.
	h := sha256.Sum256([]byte("auth:" + cfg.Secret))
	e := sha256.Sum256([]byte("enc:" + cfg.Secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Lifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.Secure,
	}
	return &CookieManager{store: store}
}

func (m *CookieManager) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a, ok := m.load(r); ok {
			r = r.WithContext(WithAdmin(r.Context(), a))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *CookieManager) load(r *http.Request) (models.Admin, bool) {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		return models.Admin{}, false
	}
	username, ok := s.Values[keyUsername].(string)
	if !ok || username == "" {
		return models.Admin{}, false
	}
	role, _ := s.Values[keyRole].(int)
	id, _ := s.Values[keyAdminID].(int64)
	return models.Admin{ID: id, Username: username, Role: role}, true
}

func (m *CookieManager) Bind(w http.ResponseWriter, r *http.Request, a models.Admin) error {
	// битая кука не повод отказать во входе, просто начинаем новую сессию
	s, err := m.store.New(r, sessionName)
	if s == nil {
		return err
	}
	s.Values[keyAdminID] = a.ID
	s.Values[keyUsername] = a.Username
	s.Values[keyRole] = a.Role
	return s.Save(r, w) // выставит Set-Cookie
}

func (m *CookieManager) Destroy(w http.ResponseWriter, r *http.Request) error {
	s, err := m.store.New(r, sessionName)
	if s == nil {
		return err
	}
	s.Values = map[interface{}]interface{}{}
	s.Options.MaxAge = -1
	return s.Save(r, w)
}
