package ports

import (
	"context"

	"github.com/elibrary/library-system/internal/core/domain"
)

// IdentityResolver loads a full identity for a token subject. The
// authentication gate resolves identity fresh on every request so role
// changes apply without waiting for token expiry.
type IdentityResolver interface {
	LoadByUsername(ctx context.Context, username string) (*domain.User, error)
}

type AuthService interface {
	IdentityResolver

	// Register hashes the password and writes a new non-admin identity,
	// returning the record store's response body unchanged.
	Register(ctx context.Context, username, email, password string) (string, error)
	// Login verifies credentials by email and returns a bearer token whose
	// subject is the identity's username.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
