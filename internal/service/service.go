// Package service — бизнес-логика поверх хранилищ: вход, контент страниц,
// управление администраторами. HTTP здесь не знают.
package service

import (
	"context"
	"errors"

	"SiteCMS/internal/models"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrSelfDeletion       = errors.New("cannot delete yourself")
	ErrConflict           = errors.New("already exists")
	ErrUnknownPage        = errors.New("unknown page")
)

// AdminRepository: то, что сервисам нужно от таблицы admins.
type AdminRepository interface {
	ByUsername(ctx context.Context, username string) (models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	Insert(ctx context.Context, a models.Admin) error
	Delete(ctx context.Context, username, passwordHash string) error
}

// ContentRepository: таблицы-синглтоны с контентом.
type ContentRepository interface {
	Get(ctx context.Context, p models.Page) (models.Content, error)
	Update(ctx context.Context, p models.Page, c models.Content) error
	Rows(ctx context.Context, p models.Page) ([]models.Content, error)
}
