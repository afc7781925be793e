package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"SiteCMS/internal/service"
	"SiteCMS/internal/sessions"
)

// Handlers: зависимости HTTP-обработчиков. Собирается в main, глобальных переменных нет.
type Handlers struct {
	Auth     *service.Authenticator
	Content  *service.ContentService
	Admins   *service.AdminService
	Sessions sessions.Manager
	Views    *Views
}

// Имена страниц, каждая склеивается с base.html
var viewNames = []string{
	"index.html",
	"about.html",
	"login.html",
	"admin.html",
	"edit_page.html",
	"admins.html",
	"add_admin.html",
	"delete_admin.html",
	"error_role.html",
	"404.html",
	"500.html",
}

// Views: разобранные шаблоны, по одному на страницу.
type Views struct {
	pages map[string]*template.Template
}

// NewViews разбирает шаблоны один раз при старте; fsys обычно web.FS.
func NewViews(fsys fs.FS) (*Views, error) {
	v := &Views{pages: make(map[string]*template.Template, len(viewNames))}
	for _, name := range viewNames {
		t, err := template.ParseFS(fsys, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// Render сам прокидывает .Admin, .IsAdmin и .Year во все шаблоны.
// Сначала пишем в буфер, чтобы ошибка шаблона не оставила полстраницы.
func (v *Views) Render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	admin, isAdmin := sessions.AdminFromContext(r.Context())
	data["Admin"] = admin
	data["IsAdmin"] = isAdmin
	data["Year"] = time.Now().Year()

	t, ok := v.pages[name]
	if !ok {
		log.Printf("views: unknown template %s", name)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		log.Printf("views: execute %s: %v", name, err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// serverError: ошибка БД, пишем в лог, пользователю ничего лишнего.
func serverError(w http.ResponseWriter, err error) {
	log.Printf("server error: %v", err)
	http.Error(w, "Server error", http.StatusInternalServerError)
}
