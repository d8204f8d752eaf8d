package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

type stubBookRepo struct {
	books    []domain.Book
	created  *domain.Book
	updates  map[string]any
	updateID int
}

func (s *stubBookRepo) List(_ context.Context) ([]domain.Book, error) { return s.books, nil }

func (s *stubBookRepo) GetByID(_ context.Context, id int) (*domain.Book, error) {
	for i := range s.books {
		if s.books[i].ID == id {
			b := s.books[i]
			return &b, nil
		}
	}
	return nil, domain.ErrBookNotFound
}

func (s *stubBookRepo) Search(_ context.Context, _ string) ([]domain.Book, error) {
	return s.books, nil
}

func (s *stubBookRepo) Create(_ context.Context, book *domain.Book) (string, error) {
	s.created = book
	return `[{"book_id":7}]`, nil
}

func (s *stubBookRepo) Update(_ context.Context, id int, updates map[string]any) (string, error) {
	s.updateID = id
	s.updates = updates
	return "[]", nil
}

func (s *stubBookRepo) Delete(_ context.Context, _ int) error { return nil }

type stubStorage struct {
	savedName string
	savedData []byte
}

func (s *stubStorage) Save(filename string, r io.Reader) (string, error) {
	s.savedName = filename
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.savedData = data
	return "/uploads/abc_" + filename, nil
}

func (s *stubStorage) Resolve(filename string) (string, error) { return "/tmp/" + filename, nil }

func newBookService(repo ports.BookRepository, storage ports.FileStorage) *BookService {
	return NewBookService(repo, storage, "http://localhost:8080", zerolog.Nop())
}

// Minimal but genuine PDF header; enough for content sniffing.
const pdfPayload = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF"

func TestBookService_Create_AcceptsPDF(t *testing.T) {
	repo := &stubBookRepo{}
	storage := &stubStorage{}
	svc := newBookService(repo, storage)

	body, err := svc.Create(context.Background(), ports.CreateBookInput{
		Title:      "Dune",
		Author:     "Frank Herbert",
		UploadedBy: "alice",
		FileName:   "dune.pdf",
		File:       strings.NewReader(pdfPayload),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if body != `[{"book_id":7}]` {
		t.Fatalf("store body not passed through: %q", body)
	}
	if storage.savedName != "dune.pdf" || string(storage.savedData) != pdfPayload {
		t.Fatalf("upload not stored as received")
	}
	if repo.created == nil || repo.created.FileURL != "/uploads/abc_dune.pdf" {
		t.Fatalf("catalog row missing stored file URL: %+v", repo.created)
	}
	if repo.created.UploadedAt == "" {
		t.Fatalf("uploaded_at not set")
	}
}

func TestBookService_Create_RejectsNonPDF(t *testing.T) {
	repo := &stubBookRepo{}
	storage := &stubStorage{}
	svc := newBookService(repo, storage)

	_, err := svc.Create(context.Background(), ports.CreateBookInput{
		Title:    "Notes",
		FileName: "notes.pdf",
		File:     strings.NewReader("just plain text pretending to be a pdf"),
	})
	if !errors.Is(err, domain.ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
	if storage.savedData != nil {
		t.Fatalf("rejected upload was written to storage")
	}
	if repo.created != nil {
		t.Fatalf("rejected upload reached the record store")
	}
}

func TestBookService_Create_RejectsMissingFile(t *testing.T) {
	svc := newBookService(&stubBookRepo{}, &stubStorage{})

	_, err := svc.Create(context.Background(), ports.CreateBookInput{Title: "Dune"})
	if !errors.Is(err, domain.ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF for missing file, got %v", err)
	}
}

func TestBookService_AbsolutizesFileURLs(t *testing.T) {
	repo := &stubBookRepo{books: []domain.Book{
		{ID: 1, Title: "Dune", FileURL: "/uploads/abc_dune.pdf"},
		{ID: 2, Title: "Hosted", FileURL: "https://cdn.example.com/hosted.pdf"},
	}}
	svc := newBookService(repo, &stubStorage{})

	books, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if books[0].FileURL != "http://localhost:8080/uploads/abc_dune.pdf" {
		t.Fatalf("relative URL not absolutized: %q", books[0].FileURL)
	}
	if books[1].FileURL != "https://cdn.example.com/hosted.pdf" {
		t.Fatalf("absolute URL rewritten: %q", books[1].FileURL)
	}

	book, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if book.FileURL != "http://localhost:8080/uploads/abc_dune.pdf" {
		t.Fatalf("Get did not absolutize: %q", book.FileURL)
	}
}

func TestBookService_Update_DropsRowKey(t *testing.T) {
	repo := &stubBookRepo{}
	svc := newBookService(repo, &stubStorage{})

	_, err := svc.Update(context.Background(), 3, map[string]any{
		"title":   "New Title",
		"book_id": 99,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.updateID != 3 {
		t.Fatalf("wrong row targeted: %d", repo.updateID)
	}
	if _, ok := repo.updates["book_id"]; ok {
		t.Fatalf("row key leaked into patch: %v", repo.updates)
	}
	if repo.updates["title"] != "New Title" {
		t.Fatalf("patch fields lost: %v", repo.updates)
	}
}
