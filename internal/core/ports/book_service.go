package ports

import (
	"context"
	"io"

	"github.com/elibrary/library-system/internal/core/domain"
)

// CreateBookInput carries a new catalog entry together with its PDF payload.
type CreateBookInput struct {
	Title       string
	Author      string
	Description string
	CategoryID  *int
	UploadedBy  string
	FileName    string
	File        io.Reader
}

type BookService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Get(ctx context.Context, id int) (*domain.Book, error)
	Search(ctx context.Context, query string) ([]domain.Book, error)
	Create(ctx context.Context, input CreateBookInput) (string, error)
	Update(ctx context.Context, id int, updates map[string]any) (string, error)
	Delete(ctx context.Context, id int) error
}
