package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

// CategoryService is a thin pass-through over the category adapter.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, category *domain.Category) (string, error) {
	body, err := s.repo.Create(ctx, category)
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("name", category.Name).Msg("category created")
	return body, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, updates map[string]any) (string, error) {
	// category_id is the row key; never let a patch rewrite it.
	delete(updates, "category_id")
	return s.repo.Update(ctx, id, updates)
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
