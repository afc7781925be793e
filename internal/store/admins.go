package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"SiteCMS/internal/db"
	"SiteCMS/internal/models"
)

var (
	ErrNotFound = errors.New("store: not found")
	ErrConflict = errors.New("store: already exists")
)

// AdminStore — доступ к таблице admins.
type AdminStore struct {
	db *db.DB
}

func NewAdminStore(d *db.DB) *AdminStore {
	return &AdminStore{db: d}
}

// ByUsername ищет по точному совпадению логина.
func (s *AdminStore) ByUsername(ctx context.Context, username string) (models.Admin, error) {
	var a models.Admin
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role FROM admins WHERE username = $1`, username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, ErrNotFound
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("store: admin by username: %w", err)
	}
	return a, nil
}

func (s *AdminStore) List(ctx context.Context) ([]models.Admin, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, username, role FROM admins ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: list admins: %w", err)
	}
	defer rows.Close()

	list := make([]models.Admin, 0, 8)
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.Username, &a.Role); err != nil {
			return nil, fmt.Errorf("store: scan admin: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list admins: %w", err)
	}
	return list, nil
}

// Insert возвращает ErrConflict, если логин уже занят.
func (s *AdminStore) Insert(ctx context.Context, a models.Admin) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO admins (username, password_hash, role) VALUES ($1, $2, $3)`,
		a.Username, a.PasswordHash, a.Role,
	)
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrConflict, a.Username)
	}
	if err != nil {
		return fmt.Errorf("store: insert admin: %w", err)
	}
	return nil
}

// Delete удаляет строку, только если и логин, и хэш совпали.
// Ноль затронутых строк даёт ErrNotFound.
func (s *AdminStore) Delete(ctx context.Context, username, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM admins WHERE username = $1 AND password_hash = $2`, username, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("store: delete admin: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete admin: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
