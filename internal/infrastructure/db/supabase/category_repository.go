package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/elibrary/library-system/internal/core/domain"
)

const categoriesTable = "book_categories"

// CategoryRepository adapts the remote book_categories table.
type CategoryRepository struct {
	client *Client
}

func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	u := r.client.restURL(categoriesTable, nil)
	status, body, err := r.client.do(ctx, http.MethodGet, u, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", domain.ErrUpstream, err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: list categories: status %d", domain.ErrUpstream, status)
	}

	var categories []domain.Category
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("%w: list categories: decode: %v", domain.ErrUpstream, err)
	}
	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (string, error) {
	u := r.client.restURL(categoriesTable, nil)
	status, body, err := r.client.do(ctx, http.MethodPost, u, category, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return "", fmt.Errorf("%w: create category: %v", domain.ErrUpstream, err)
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("%w: create category: status %d: %s", domain.ErrUpstream, status, body)
	}
	return string(body), nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int, updates map[string]any) (string, error) {
	u := r.client.restURL(categoriesTable, eq("category_id", strconv.Itoa(id)))
	status, body, err := r.client.do(ctx, http.MethodPatch, u, updates, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return "", fmt.Errorf("%w: update category: %v", domain.ErrUpstream, err)
	}
	switch {
	case status == http.StatusNotFound:
		return "", domain.ErrCategoryNotFound
	case status < 200 || status >= 300:
		return "", fmt.Errorf("%w: update category: status %d: %s", domain.ErrUpstream, status, body)
	}
	return string(body), nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	u := r.client.restURL(categoriesTable, eq("category_id", strconv.Itoa(id)))
	status, body, err := r.client.do(ctx, http.MethodDelete, u, nil, nil)
	if err != nil {
		return fmt.Errorf("%w: delete category: %v", domain.ErrUpstream, err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: delete category: status %d: %s", domain.ErrUpstream, status, body)
	}
	return nil
}
