package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"SiteCMS/internal/models"
	"SiteCMS/internal/store"
)

type AdminService struct {
	admins AdminRepository
}

func NewAdminService(admins AdminRepository) *AdminService {
	return &AdminService{admins: admins}
}

func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	return s.admins.List(ctx)
}

// Create добавляет администратора. Все три поля обязательны (ErrValidation),
// роль должна быть целым числом >= 1 (ErrInvalidRole). Занятый логин даёт ErrConflict.
func (s *AdminService) Create(ctx context.Context, username, password, role string) error {
	if username == "" || password == "" || role == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	r, err := strconv.Atoi(strings.TrimSpace(role))
	if err != nil || r < models.RoleDefault {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return err
	}

	err = s.admins.Insert(ctx, models.Admin{Username: username, PasswordHash: hash, Role: r})
	if errors.Is(err, store.ErrConflict) {
		return fmt.Errorf("%w: %s", ErrConflict, username)
	}
	return err
}

// Delete удаляет администратора по логину и паролю.
// Себя удалить нельзя, это проверяется первым, до обращения к хранилищу и
// независимо от пароля. Неизвестный логин и неверный пароль дают одну ErrNotFound.
// Активные сессии удалённого не сбрасываются.
func (s *AdminService) Delete(ctx context.Context, caller models.Admin, username, password string) error {
	if caller.Username != "" && username == caller.Username {
		return ErrSelfDeletion
	}
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	target, err := s.admins.ByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !models.CheckPassword(target.PasswordHash, password) {
		return ErrNotFound
	}

	err = s.admins.Delete(ctx, target.Username, target.PasswordHash)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
