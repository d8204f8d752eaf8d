package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

// BookService provides the catalog operations. Reads and writes are
// pass-through to the record store; the only local work is storing uploaded
// PDFs and absolutizing relative file URLs.
type BookService struct {
	repo    ports.BookRepository
	storage ports.FileStorage
	baseURL string
	logger  zerolog.Logger
}

func NewBookService(repo ports.BookRepository, storage ports.FileStorage, baseURL string, logger zerolog.Logger) *BookService {
	return &BookService{
		repo:    repo,
		storage: storage,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range books {
		books[i].FileURL = s.absoluteURL(books[i].FileURL)
	}
	return books, nil
}

func (s *BookService) Get(ctx context.Context, id int) (*domain.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	book.FileURL = s.absoluteURL(book.FileURL)
	return book, nil
}

func (s *BookService) Search(ctx context.Context, query string) ([]domain.Book, error) {
	books, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	for i := range books {
		books[i].FileURL = s.absoluteURL(books[i].FileURL)
	}
	return books, nil
}

// Create stores the uploaded PDF locally and inserts the catalog row with
// the resulting file URL. Non-PDF content is rejected before anything is
// written.
func (s *BookService) Create(ctx context.Context, input ports.CreateBookInput) (string, error) {
	if input.File == nil {
		return "", domain.ErrNotPDF
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if !mimetype.Detect(data).Is("application/pdf") {
		return "", domain.ErrNotPDF
	}

	fileURL, err := s.storage.Save(input.FileName, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	book := &domain.Book{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		FileURL:     fileURL,
		UploadedBy:  input.UploadedBy,
		UploadedAt:  time.Now().UTC().Format(time.RFC3339),
		CategoryID:  input.CategoryID,
	}

	body, err := s.repo.Create(ctx, book)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("title", input.Title).Str("uploaded_by", input.UploadedBy).Msg("book created")
	return body, nil
}

func (s *BookService) Update(ctx context.Context, id int, updates map[string]any) (string, error) {
	// book_id is the row key; never let a patch rewrite it.
	delete(updates, "book_id")
	return s.repo.Update(ctx, id, updates)
}

func (s *BookService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// absoluteURL prepends the public base URL to store-relative file paths.
// Already-complete URLs pass through untouched.
func (s *BookService) absoluteURL(fileURL string) string {
	if fileURL == "" || strings.HasPrefix(fileURL, "http://") || strings.HasPrefix(fileURL, "https://") {
		return fileURL
	}
	return s.baseURL + fileURL
}
