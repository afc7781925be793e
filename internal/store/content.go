package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"SiteCMS/internal/db"
	"SiteCMS/internal/models"
)

// ContentStore — таблицы-синглтоны с контентом страниц.
// Имена таблиц и колонок берутся только из models.Page, не из запроса.
type ContentStore struct {
	db *db.DB
}

func NewContentStore(d *db.DB) *ContentStore {
	return &ContentStore{db: d}
}

func (s *ContentStore) Get(ctx context.Context, p models.Page) (models.Content, error) {
	cols := p.Columns()
	q := "SELECT " + strings.Join(cols, ", ") + " FROM " + p.Table + " WHERE id = $1"
	c, err := scanContent(s.db.QueryRowContext(ctx, q, models.SingletonID), cols)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", p.Table, err)
	}
	return c, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// NULL в колонках читаем как пустую строку
func scanContent(row scanner, cols []string) (models.Content, error) {
	vals := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	c := make(models.Content, len(cols))
	for i, col := range cols {
		c[col] = vals[i].String
	}
	return c, nil
}

// Update перезаписывает все поля строки; чего нет в c, станет пустой строкой.
func (s *ContentStore) Update(ctx context.Context, p models.Page, c models.Content) error {
	cols := p.Columns()
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, c[col])
	}
	args = append(args, models.SingletonID)

	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", p.Table, strings.Join(sets, ", "), len(cols)+1)
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("store: update %s: %w", p.Table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: update %s: %w", p.Table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Rows: все строки таблицы как есть (для /debug/about).
func (s *ContentStore) Rows(ctx context.Context, p models.Page) ([]models.Content, error) {
	cols := p.Columns()
	q := "SELECT " + strings.Join(cols, ", ") + " FROM " + p.Table + " ORDER BY id"
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("store: rows %s: %w", p.Table, err)
	}
	defer rows.Close()

	out := make([]models.Content, 0, 1)
	for rows.Next() {
		c, err := scanContent(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("store: scan %s: %w", p.Table, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
