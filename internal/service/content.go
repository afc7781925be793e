package service

import (
	"context"
	"errors"
	"fmt"

	"SiteCMS/internal/models"
	"SiteCMS/internal/store"
)

type ContentService struct {
	content ContentRepository
}

func NewContentService(content ContentRepository) *ContentService {
	return &ContentService{content: content}
}

func page(key string) (models.Page, error) {
	p, ok := models.Pages[key]
	if !ok {
		return models.Page{}, fmt.Errorf("%w: %q", ErrUnknownPage, key)
	}
	return p, nil
}

// Get возвращает единственную строку страницы. ErrNotFound значит, что bootstrap не запускался.
func (s *ContentService) Get(ctx context.Context, pageKey string) (models.Content, error) {
	p, err := page(pageKey)
	if err != nil {
		return nil, err
	}
	c, err := s.content.Get(ctx, p)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s content", ErrNotFound, p.Key)
	}
	return c, err
}

// Update полностью заменяет поля строки: без слияния и без проверки содержимого.
// Лишние ключи игнорируются, отсутствующие становятся пустыми.
func (s *ContentService) Update(ctx context.Context, pageKey string, fields models.Content) error {
	p, err := page(pageKey)
	if err != nil {
		return err
	}

	c := make(models.Content, len(p.Fields))
	for _, f := range p.Fields {
		c[f.Column] = fields[f.Column]
	}

	err = s.content.Update(ctx, p, c)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s content", ErrNotFound, p.Key)
	}
	return err
}

// Rows: все строки таблицы страницы (отладка).
func (s *ContentService) Rows(ctx context.Context, pageKey string) ([]models.Content, error) {
	p, err := page(pageKey)
	if err != nil {
		return nil, err
	}
	return s.content.Rows(ctx, p)
}
