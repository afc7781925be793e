package db

import (
	"testing"

	"SiteCMS/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	parts := config.Database{
		Host: "db.local", Port: "5432", User: "site", Password: "pw",
		Name: "sitecms", SSLMode: "disable",
	}

	tests := []struct {
		name       string
		cfg        config.Database
		wantDriver string
		wantDSN    string
	}{
		{
			name:       "key=value parts",
			cfg:        parts,
			wantDriver: "postgres",
			wantDSN:    "host=db.local port=5432 user=site dbname=sitecms sslmode=disable password=pw",
		},
		{
			name:       "raw postgres dsn",
			cfg:        config.Database{DSN: "host=x dbname=y"},
			wantDriver: "postgres",
			wantDSN:    "host=x dbname=y",
		},
		{
			name:       "pgx override",
			cfg:        config.Database{DSN: "host=x dbname=y", Driver: "pgx"},
			wantDriver: "pgx",
			wantDSN:    "host=x dbname=y",
		},
		{
			name:       "sqlite url",
			cfg:        config.Database{URL: "sqlite:site.db"},
			wantDriver: "sqlite",
			wantDSN:    "site.db",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, dsn, err := resolve(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, driver)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestResolvePostgresURL(t *testing.T) {
	driver, dsn, err := resolve(config.Database{
		URL: "postgres://site:pw@db.local:5432/sitecms?sslmode=disable",
	})
	require.NoError(t, err)
	assert.Equal(t, "postgres", driver)
	assert.Contains(t, dsn, "db.local")
	assert.Contains(t, dsn, "sitecms")
}

func TestResolveURLWinsOverParts(t *testing.T) {
	driver, _, err := resolve(config.Database{URL: "sqlite:/tmp/a.db", DSN: "host=x", Host: "y"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", driver)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Database
	}{
		{"unsupported scheme", config.Database{URL: "mysql://u:p@h/db"}},
		{"driver does not match url", config.Database{URL: "sqlite:/tmp/a.db", Driver: "pgx"}},
		{"unknown driver", config.Database{DSN: "host=x", Driver: "oracle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := resolve(tt.cfg)
			assert.Error(t, err)
		})
	}
}
