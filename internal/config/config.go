package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Ключи конфигурации. В окружении те же имена в верхнем регистре (DATABASE_URL, PORT, ...).
const (
	keyHost             = "host"
	keyPort             = "port"
	keyDatabaseURL      = "database_url"
	keyPostgresDSN      = "postgres_dsn"
	keyPostgresHost     = "postgres_host"
	keyPostgresPort     = "postgres_port"
	keyPostgresUser     = "postgres_user"
	keyPostgresPassword = "postgres_password"
	keyPostgresDB       = "postgres_db"
	keyPostgresSSLMode  = "postgres_sslmode"
	keyDatabaseDriver   = "database_driver"
	keySessionSecret    = "session_secret"
	keySessionStore     = "session_store"
	keySessionLifetime  = "session_lifetime"
	keyHTTPS            = "app_https"
	keyLoginRateLimit   = "login_rate_limit"
	keyMetricsEnabled   = "metrics_enabled"
	keyDebug            = "debug"
	keySeedUsername     = "seed_admin_username"
	keySeedPassword     = "seed_admin_password"
	keySeedRole         = "seed_admin_role"
	keyBcryptCost       = "bcrypt_cost"
)

// Хранилища сессий
const (
	SessionStoreMemory   = "memory"
	SessionStoreDatabase = "database"
	SessionStoreCookie   = "cookie"
)

// Секрет по умолчанию, только для локальной разработки.
const DevSessionSecret = "dev-insecure-secret-change-me-now"

type Config struct {
	Host           string
	Port           string
	Database       Database
	Session        Session
	LoginRateLimit int // попыток входа в минуту с одного IP, 0 = без лимита
	MetricsEnabled bool
	Debug          bool
	Seed           Seed
	BcryptCost     int
}

// Database описывает, откуда брать подключение.
// Приоритет: DATABASE_URL > POSTGRES_DSN > сборка из отдельных переменных.
type Database struct {
	URL      string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Driver   string // postgres | pgx | sqlite, пусто: определить по URL
}

type Session struct {
	Secret   string
	Store    string
	Lifetime time.Duration
	Secure   bool
}

// Seed — администратор, которого bootstrap создаёт в пустой таблице.
type Seed struct {
	Username string
	Password string
	Role     int
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyHost, "127.0.0.1")
	v.SetDefault(keyPort, "3000")
	v.SetDefault(keyDatabaseURL, "")
	v.SetDefault(keyPostgresDSN, "")
	v.SetDefault(keyPostgresHost, "127.0.0.1")
	v.SetDefault(keyPostgresPort, "5432")
	v.SetDefault(keyPostgresUser, "postgres")
	v.SetDefault(keyPostgresPassword, "")
	v.SetDefault(keyPostgresDB, "sitecms")
	v.SetDefault(keyPostgresSSLMode, "disable")
	v.SetDefault(keyDatabaseDriver, "")
	v.SetDefault(keySessionSecret, "")
	v.SetDefault(keySessionStore, SessionStoreMemory)
	v.SetDefault(keySessionLifetime, 7*24*time.Hour)
	v.SetDefault(keyHTTPS, false)
	v.SetDefault(keyLoginRateLimit, 10)
	v.SetDefault(keyMetricsEnabled, true)
	v.SetDefault(keyDebug, false)
	v.SetDefault(keySeedUsername, "SoltanAlikhan")
	v.SetDefault(keySeedPassword, "Lenovo135!")
	v.SetDefault(keySeedRole, 3)
	v.SetDefault(keyBcryptCost, 10)
}

// Load читает .env (если есть), затем файл конфигурации (если указан) и окружение.
// Окружение перекрывает файл, файл перекрывает значения по умолчанию.
func Load(configFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Host: v.GetString(keyHost),
		Port: v.GetString(keyPort),
		Database: Database{
			URL:      v.GetString(keyDatabaseURL),
			DSN:      v.GetString(keyPostgresDSN),
			Host:     v.GetString(keyPostgresHost),
			Port:     v.GetString(keyPostgresPort),
			User:     v.GetString(keyPostgresUser),
			Password: v.GetString(keyPostgresPassword),
			Name:     v.GetString(keyPostgresDB),
			SSLMode:  v.GetString(keyPostgresSSLMode),
			Driver:   strings.ToLower(v.GetString(keyDatabaseDriver)),
		},
		Session: Session{
			Secret:   v.GetString(keySessionSecret),
			Store:    strings.ToLower(v.GetString(keySessionStore)),
			Lifetime: v.GetDuration(keySessionLifetime),
			Secure:   v.GetBool(keyHTTPS),
		},
		LoginRateLimit: v.GetInt(keyLoginRateLimit),
		MetricsEnabled: v.GetBool(keyMetricsEnabled),
		Debug:          v.GetBool(keyDebug),
		Seed: Seed{
			Username: v.GetString(keySeedUsername),
			Password: v.GetString(keySeedPassword),
			Role:     v.GetInt(keySeedRole),
		},
		BcryptCost: v.GetInt(keyBcryptCost),
	}

	if cfg.Session.Secret == "" {
		// без секрета работать нельзя, но локально пусть будет
		cfg.Session.Secret = DevSessionSecret
	}

	switch cfg.Session.Store {
	case SessionStoreMemory, SessionStoreDatabase, SessionStoreCookie:
	default:
		return Config{}, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
	if cfg.Session.Lifetime <= 0 {
		return Config{}, fmt.Errorf("session lifetime must be positive, got %s", cfg.Session.Lifetime)
	}
	if cfg.Seed.Username == "" || cfg.Seed.Password == "" || cfg.Seed.Role < 1 {
		return Config{}, errors.New("seed administrator needs username, password and role >= 1")
	}
	return cfg, nil
}
