package db

import (
	"context"
	"fmt"
	"log"
	"strings"

	"SiteCMS/internal/config"
	"SiteCMS/internal/models"
)

func (d *DB) adminsDDL() string {
	id := "id SERIAL PRIMARY KEY"
	if d.Dialect == SQLite {
		id = "id INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return `CREATE TABLE IF NOT EXISTS admins (
		` + id + `,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role INTEGER NOT NULL DEFAULT 1
	)`
}

// id задаём сами (всегда 1), автоинкремент не нужен
func contentDDL(p models.Page) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS " + p.Table + " (\n\t\tid INTEGER PRIMARY KEY")
	for _, c := range p.Columns() {
		b.WriteString(",\n\t\t" + c + " TEXT")
	}
	b.WriteString("\n\t)")
	return b.String()
}

// Bootstrap создаёт таблицы и заполняет их, если они пустые.
// Повторный запуск ничего не дублирует.
func (d *DB) Bootstrap(ctx context.Context, seed config.Seed) error {
	stmts := []string{d.adminsDDL()}
	for _, p := range []models.Page{models.MainPage, models.AboutPage} {
		stmts = append(stmts, contentDDL(p))
	}
	for _, s := range stmts {
		if _, err := d.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("db: create table: %w", err)
		}
	}

	if err := d.seedAdmin(ctx, seed); err != nil {
		return err
	}
	for _, p := range []models.Page{models.MainPage, models.AboutPage} {
		if err := d.seedContent(ctx, p); err != nil {
			return err
		}
	}

	log.Println("db: bootstrap done")
	return nil
}

func (d *DB) count(ctx context.Context, table string) (int, error) {
	var n int
	err := d.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}

func (d *DB) seedAdmin(ctx context.Context, seed config.Seed) error {
	n, err := d.count(ctx, "admins")
	if err != nil {
		return fmt.Errorf("db: count admins: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := models.HashPassword(seed.Password)
	if err != nil {
		return fmt.Errorf("db: hash seed password: %w", err)
	}
	if _, err := d.ExecContext(ctx,
		`INSERT INTO admins (username, password_hash, role) VALUES ($1, $2, $3)`,
		seed.Username, hash, seed.Role,
	); err != nil {
		return fmt.Errorf("db: seed admin: %w", err)
	}
	log.Printf("db: seeded administrator %q (role %d)", seed.Username, seed.Role)
	return nil
}

func (d *DB) seedContent(ctx context.Context, p models.Page) error {
	n, err := d.count(ctx, p.Table)
	if err != nil {
		return fmt.Errorf("db: count %s: %w", p.Table, err)
	}
	if n > 0 {
		return nil
	}

	cols := p.Columns()
	def := models.DefaultContent(p)
	args := make([]any, 0, len(cols)+1)
	args = append(args, models.SingletonID)
	ph := []string{"$1"}
	for i, c := range cols {
		args = append(args, def[c])
		ph = append(ph, fmt.Sprintf("$%d", i+2))
	}

	q := "INSERT INTO " + p.Table + " (id, " + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(ph, ", ") + ")"
	if _, err := d.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("db: seed %s: %w", p.Table, err)
	}
	return nil
}
