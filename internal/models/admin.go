package models

// Уровни доступа администраторов. Сравниваются числом: чем больше, тем больше прав.
const (
	RoleDefault = 1 // по умолчанию, ни один маршрут по нему не проверяется
	RoleEditor  = 2 // редактирование контента страниц
	RoleSuper   = 3 // управление другими администраторами
)

// Admin — запись из таблицы admins.
// Пароль хранится в виде bcrypt-хэша в поле password_hash (в БД).
type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         int    `json:"role"`
}

// HasRole: простое числовое сравнение, иерархии ролей нет.
func (a Admin) HasRole(min int) bool {
	return a.Role >= min
}

// Snapshot — копия без хэша пароля; именно она живёт в сессии.
func (a Admin) Snapshot() Admin {
	a.PasswordHash = ""
	return a
}
