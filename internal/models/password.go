package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost можно понизить в тестах (bcrypt.MinCost), чтобы не ждать хэширования.
var BcryptCost = bcrypt.DefaultCost

var ErrEmptyPassword = errors.New("refusing to hash empty password")

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword сравнивает пароль с хэшем; пустой хэш не совпадает ни с чем.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
