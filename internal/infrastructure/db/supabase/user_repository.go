package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elibrary/library-system/internal/core/domain"
)

const usersTable = "users"

// UserRepository reads and writes identity rows in the remote users table.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// userRow mirrors the wire shape of a users row. Timestamps arrive as text.
type userRow struct {
	ID        int    `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username", username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *UserRepository) findOne(ctx context.Context, column, value string) (*domain.User, error) {
	u := r.client.restURL(usersTable, eq(column, value))
	status, body, err := r.client.do(ctx, http.MethodGet, u, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: find user: %v", domain.ErrUpstream, err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: find user: status %d", domain.ErrUpstream, status)
	}

	var rows []userRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode user row: %v", domain.ErrUpstream, err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}

	row := rows[0]
	return &domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.Password,
		IsAdmin:      row.IsAdmin,
		CreatedAt:    parseTimestamp(row.CreatedAt),
		UpdatedAt:    parseTimestamp(row.UpdatedAt),
	}, nil
}

// Create inserts a new identity row and returns the store's echoed
// representation unchanged.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	payload := map[string]any{
		"username": user.Username,
		"email":    user.Email,
		"password": user.PasswordHash,
		"is_admin": user.IsAdmin,
	}

	u := r.client.restURL(usersTable, nil)
	status, body, err := r.client.do(ctx, http.MethodPost, u, payload, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return "", fmt.Errorf("%w: create user: %v", domain.ErrUpstream, err)
	}
	switch {
	case status == http.StatusConflict || strings.Contains(string(body), `"23505"`):
		return "", domain.ErrUserExists
	case status < 200 || status >= 300:
		return "", fmt.Errorf("%w: create user: status %d: %s", domain.ErrUpstream, status, body)
	}
	return string(body), nil
}

// parseTimestamp tolerates the timestamp shapes PostgREST emits. Anything
// unparseable maps to the zero time rather than failing the lookup.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
