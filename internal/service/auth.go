package service

import (
	"context"
	"errors"

	"SiteCMS/internal/models"
	"SiteCMS/internal/store"
)

type Authenticator struct {
	admins AdminRepository
}

func NewAuthenticator(admins AdminRepository) *Authenticator {
	return &Authenticator{admins: admins}
}

// Authenticate проверяет логин и пароль. Неизвестный логин и неверный пароль
// дают одну и ту же ErrInvalidCredentials. Возвращает копию без хэша.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (models.Admin, error) {
	if username == "" || password == "" {
		return models.Admin{}, ErrValidation
	}

	admin, err := a.admins.ByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return models.Admin{}, ErrInvalidCredentials // user not found
	}
	if err != nil {
		return models.Admin{}, err
	}

	if !models.CheckPassword(admin.PasswordHash, password) {
		return models.Admin{}, ErrInvalidCredentials // wrong password
	}
	return admin.Snapshot(), nil
}
