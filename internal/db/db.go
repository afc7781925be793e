package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"SiteCMS/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/xo/dburl"
	_ "modernc.org/sqlite"
)

// Dialect определяет DDL; запросы с $1, $2... одинаковы для обоих.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// DB — единственное подключение к базе на весь процесс.
type DB struct {
	*sql.DB
	Dialect Dialect
	Driver  string
}

// New оборачивает уже открытое подключение (тесты, встраивание).
func New(sqlDB *sql.DB, driver string) (*DB, error) {
	d, err := dialectOf(driver)
	if err != nil {
		return nil, err
	}
	// все запросы идут через одно соединение, по очереди
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	return &DB{DB: sqlDB, Dialect: d, Driver: driver}, nil
}

// Open подключается по конфигурации и проверяет соединение.
func Open(cfg config.Database) (*DB, error) {
	driver, dsn, err := resolve(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db: open failed: %w", err)
	}

	d, err := New(sqlDB, driver)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	// Ping с таймаутом (не вешаем процесс)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("db: ping failed: %w", err)
	}

	logSafeDSN(cfg, driver)
	return d, nil
}

func dialectOf(driver string) (Dialect, error) {
	switch driver {
	case "postgres", "pgx":
		return Postgres, nil
	case "sqlite":
		return SQLite, nil
	}
	return "", fmt.Errorf("db: unsupported driver %q", driver)
}

// resolve выбирает драйвер и DSN.
// Приоритет: DATABASE_URL > POSTGRES_DSN > сборка из отдельных переменных.
func resolve(cfg config.Database) (driver, dsn string, err error) {
	switch {
	case cfg.URL != "":
		driver, dsn, err = fromURL(cfg.URL)
		if err != nil {
			return "", "", err
		}
	case cfg.DSN != "":
		driver, dsn = "postgres", cfg.DSN
		if strings.Contains(cfg.DSN, "://") {
			if driver, dsn, err = fromURL(cfg.DSN); err != nil {
				return "", "", err
			}
		}
	default:
		// lib/pq key=value формат; пароль не логируем
		parts := []string{
			"host=" + cfg.Host,
			"port=" + cfg.Port,
			"user=" + cfg.User,
			"dbname=" + cfg.Name,
			"sslmode=" + cfg.SSLMode,
		}
		if cfg.Password != "" {
			parts = append(parts, "password="+cfg.Password)
		}
		driver, dsn = "postgres", strings.Join(parts, " ")
	}

	// pgx понимает те же DSN, что и lib/pq
	if cfg.Driver != "" {
		want, err := dialectOf(cfg.Driver)
		if err != nil {
			return "", "", err
		}
		if got, _ := dialectOf(driver); got != want {
			return "", "", fmt.Errorf("db: driver %q does not match database url (%s)", cfg.Driver, driver)
		}
		driver = cfg.Driver
	}
	return driver, dsn, nil
}

func fromURL(raw string) (string, string, error) {
	u, err := dburl.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("db: could not parse database url: %w", err)
	}
	driver := u.Driver
	switch driver {
	case "sqlite3":
		// схема sqlite: у dburl указывает на mattn/go-sqlite3, у нас modernc
		driver = "sqlite"
	case "postgres", "pgx":
	default:
		return "", "", fmt.Errorf("db: unsupported database url scheme %q", u.Scheme)
	}
	return driver, u.DSN, nil
}

// Печатаем только «куда», без секретов
func logSafeDSN(cfg config.Database, driver string) {
	if cfg.URL != "" {
		if u, err := dburl.Parse(cfg.URL); err == nil {
			log.Printf("db: connected (driver=%s host=%s)", driver, u.Hostname())
			return
		}
	}
	if cfg.DSN != "" {
		log.Printf("db: connected (driver=%s, POSTGRES_DSN provided)", driver)
		return
	}
	log.Printf("db: connected (driver=%s host=%s user=%s db=%s)", driver, cfg.Host, cfg.User, cfg.Name)
}
