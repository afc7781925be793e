// Package dbtest — база SQLite в памяти для тестов других пакетов.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"SiteCMS/internal/config"
	"SiteCMS/internal/db"
	"SiteCMS/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Seed: первый администратор в тестовой базе.
var Seed = config.Seed{Username: "SoltanAlikhan", Password: "Lenovo135!", Role: models.RoleSuper}

// Open возвращает пустую базу в памяти; закрывается в t.Cleanup.
func Open(t *testing.T) *db.DB {
	t.Helper()
	models.BcryptCost = bcrypt.MinCost

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	d, err := db.New(sqlDB, "sqlite")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

// Bootstrapped: база с таблицами, администратором Seed и контентом по умолчанию.
func Bootstrapped(t *testing.T) *db.DB {
	t.Helper()
	d := Open(t)
	require.NoError(t, d.Bootstrap(context.Background(), Seed))
	return d
}
