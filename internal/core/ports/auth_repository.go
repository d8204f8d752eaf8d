package ports

import (
	"context"

	"github.com/elibrary/library-system/internal/core/domain"
)

// UserRepository is the credential store adapter: it reads and writes
// identity records held by the external record store.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new identity and returns the store's response body
	// unchanged, so registration can pass it through to the client.
	Create(ctx context.Context, user *domain.User) (string, error)
}
