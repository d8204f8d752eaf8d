package ports

import (
	"context"

	"github.com/elibrary/library-system/internal/core/domain"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (string, error)
	Update(ctx context.Context, id int, updates map[string]any) (string, error)
	Delete(ctx context.Context, id int) error
}
