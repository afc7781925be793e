package store

import (
	"context"
	"testing"

	"SiteCMS/internal/db/dbtest"
	"SiteCMS/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStoreCRUD(t *testing.T) {
	s := NewAdminStore(dbtest.Bootstrapped(t))
	ctx := context.Background()

	seed, err := s.ByUsername(ctx, "SoltanAlikhan")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuper, seed.Role)
	assert.NotEmpty(t, seed.PasswordHash)

	require.NoError(t, s.Insert(ctx, models.Admin{Username: "ed1", PasswordHash: "h1", Role: models.RoleEditor}))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "SoltanAlikhan", list[0].Username)
	assert.Equal(t, "ed1", list[1].Username)
	assert.Equal(t, models.RoleEditor, list[1].Role)
	assert.Empty(t, list[1].PasswordHash, "list never carries hashes")

	assert.ErrorIs(t, s.Delete(ctx, "ed1", "wrong"), ErrNotFound)
	require.NoError(t, s.Delete(ctx, "ed1", "h1"))
	_, err = s.ByUsername(ctx, "ed1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "ed1", "h1"), ErrNotFound)
}

func TestAdminStoreUsernameIsCaseSensitive(t *testing.T) {
	s := NewAdminStore(dbtest.Bootstrapped(t))
	_, err := s.ByUsername(context.Background(), "soltanalikhan")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminStoreInsertConflict(t *testing.T) {
	s := NewAdminStore(dbtest.Bootstrapped(t))
	err := s.Insert(context.Background(), models.Admin{Username: "SoltanAlikhan", PasswordHash: "x", Role: 1})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestContentStoreFullReplace(t *testing.T) {
	s := NewContentStore(dbtest.Bootstrapped(t))
	ctx := context.Background()

	c, err := s.Get(ctx, models.MainPage)
	require.NoError(t, err)
	assert.Equal(t, "TEXT", c["slide1"])
	assert.Len(t, c, 47)

	// только одно поле, остальные затираются
	require.NoError(t, s.Update(ctx, models.MainPage, models.Content{"slide1": "<b>Hello</b>"}))

	c, err = s.Get(ctx, models.MainPage)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hello</b>", c["slide1"])
	assert.Equal(t, "", c["slide2"])
	assert.Equal(t, "", c["video"])

	rows, err := s.Rows(ctx, models.MainPage)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "still a singleton")
}

func TestContentStoreMissingRow(t *testing.T) {
	d := dbtest.Bootstrapped(t)
	_, err := d.Exec(`DELETE FROM about_page_content`)
	require.NoError(t, err)

	s := NewContentStore(d)
	ctx := context.Background()

	_, err = s.Get(ctx, models.AboutPage)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, models.AboutPage, models.DefaultContent(models.AboutPage)), ErrNotFound)

	rows, err := s.Rows(ctx, models.AboutPage)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
