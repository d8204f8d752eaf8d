package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/elibrary/library-system/internal/core/domain"
)

const booksTable = "books"

// BookRepository is the catalog adapter over the remote books table.
type BookRepository struct {
	client *Client
}

func NewBookRepository(client *Client) *BookRepository {
	return &BookRepository{client: client}
}

func (r *BookRepository) List(ctx context.Context) ([]domain.Book, error) {
	return r.queryBooks(ctx, r.client.restURL(booksTable, nil), "list books")
}

func (r *BookRepository) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	u := r.client.restURL(booksTable, eq("book_id", strconv.Itoa(id)))
	books, err := r.queryBooks(ctx, u, "get book")
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, domain.ErrBookNotFound
	}
	return &books[0], nil
}

// Search matches the query against title or author using PostgREST's
// or=(title.ilike.*q*,author.ilike.*q*) filter.
func (r *BookRepository) Search(ctx context.Context, query string) ([]domain.Book, error) {
	q := url.Values{}
	q.Set("or", fmt.Sprintf("(title.ilike.*%s*,author.ilike.*%s*)", query, query))
	return r.queryBooks(ctx, r.client.restURL(booksTable, q), "search books")
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (string, error) {
	u := r.client.restURL(booksTable, nil)
	status, body, err := r.client.do(ctx, http.MethodPost, u, book, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return "", fmt.Errorf("%w: create book: %v", domain.ErrUpstream, err)
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("%w: create book: status %d: %s", domain.ErrUpstream, status, body)
	}
	return string(body), nil
}

func (r *BookRepository) Update(ctx context.Context, id int, updates map[string]any) (string, error) {
	u := r.client.restURL(booksTable, eq("book_id", strconv.Itoa(id)))
	status, body, err := r.client.do(ctx, http.MethodPatch, u, updates, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return "", fmt.Errorf("%w: update book: %v", domain.ErrUpstream, err)
	}
	switch {
	case status == http.StatusNotFound:
		return "", domain.ErrBookNotFound
	case status < 200 || status >= 300:
		return "", fmt.Errorf("%w: update book: status %d: %s", domain.ErrUpstream, status, body)
	}
	return string(body), nil
}

func (r *BookRepository) Delete(ctx context.Context, id int) error {
	u := r.client.restURL(booksTable, eq("book_id", strconv.Itoa(id)))
	status, body, err := r.client.do(ctx, http.MethodDelete, u, nil, nil)
	if err != nil {
		return fmt.Errorf("%w: delete book: %v", domain.ErrUpstream, err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: delete book: status %d: %s", domain.ErrUpstream, status, body)
	}
	return nil
}

func (r *BookRepository) queryBooks(ctx context.Context, rawURL, op string) ([]domain.Book, error) {
	status, body, err := r.client.do(ctx, http.MethodGet, rawURL, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, op, err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: %s: status %d", domain.ErrUpstream, op, status)
	}

	var books []domain.Book
	if err := json.Unmarshal(body, &books); err != nil {
		return nil, fmt.Errorf("%w: %s: decode: %v", domain.ErrUpstream, op, err)
	}
	return books, nil
}
