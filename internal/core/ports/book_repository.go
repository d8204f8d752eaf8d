package ports

import (
	"context"

	"github.com/elibrary/library-system/internal/core/domain"
)

// BookRepository is the catalog adapter over the external record store.
type BookRepository interface {
	List(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id int) (*domain.Book, error)
	Search(ctx context.Context, query string) ([]domain.Book, error)
	Create(ctx context.Context, book *domain.Book) (string, error)
	// Update applies a partial update keyed by book_id and returns the
	// store's response body unchanged.
	Update(ctx context.Context, id int, updates map[string]any) (string, error)
	Delete(ctx context.Context, id int) error
}
