package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp: пустой рабочий каталог, чтобы не подхватить чужой .env.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.Lifetime)
	assert.Equal(t, DevSessionSecret, cfg.Session.Secret)
	assert.Equal(t, "sitecms", cfg.Database.Name)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, Seed{Username: "SoltanAlikhan", Password: "Lenovo135!", Role: 3}, cfg.Seed)
	assert.Equal(t, 10, cfg.LoginRateLimit)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "sqlite:/tmp/site.db")
	t.Setenv("SESSION_STORE", "Cookie")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_LIFETIME", "2h")
	t.Setenv("DEBUG", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "sqlite:/tmp/site.db", cfg.Database.URL)
	assert.Equal(t, SessionStoreCookie, cfg.Session.Store)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Session.Lifetime)
	assert.True(t, cfg.Debug)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("POSTGRES_DB=from_dotenv\n"), 0o600))
	// godotenv пишет в окружение процесса; вернём как было
	t.Setenv("POSTGRES_DB", "")
	require.NoError(t, os.Unsetenv("POSTGRES_DB"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", cfg.Database.Name)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "sitecms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
session_store: database
metrics_enabled: false
seed_admin_username: root
`), 0o600))
	t.Setenv("PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port, "env wins over file")
	assert.Equal(t, SessionStoreDatabase, cfg.Session.Store)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "root", cfg.Seed.Username)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unknown session store", "SESSION_STORE", "redis"},
		{"zero lifetime", "SESSION_LIFETIME", "0s"},
		{"seed role below 1", "SEED_ADMIN_ROLE", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
