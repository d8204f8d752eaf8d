package service

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/ports"
)

const maxExportName = 100

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ExportService bundles book files into zip archives under a download
// directory. Each book's file is fetched over HTTP from its file_url;
// failures on individual books are logged and skipped so one broken entry
// does not sink the whole bundle.
type ExportService struct {
	books       ports.BookRepository
	client      *http.Client
	downloadDir string
	logger      zerolog.Logger
}

func NewExportService(books ports.BookRepository, client *http.Client, downloadDir string, logger zerolog.Logger) *ExportService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &ExportService{books: books, client: client, downloadDir: downloadDir, logger: logger}
}

func (s *ExportService) ExportBooks(ctx context.Context, bookIDs []int) (*ports.ExportResult, error) {
	if err := os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}

	zipName := fmt.Sprintf("books_%s.zip", uuid.NewString())
	zipPath := filepath.Join(s.downloadDir, zipName)

	f, err := os.Create(zipPath)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	bundled := 0
	for _, id := range bookIDs {
		if err := s.addBook(ctx, zw, id); err != nil {
			s.logger.Warn().Err(err).Int("book_id", id).Msg("skipping book in export")
			continue
		}
		bundled++
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}

	s.logger.Info().Int("requested", len(bookIDs)).Int("bundled", bundled).Str("zip", zipName).Msg("export complete")

	return &ports.ExportResult{
		ZipPath:     zipPath,
		DownloadURL: "/downloads/" + zipName,
		Requested:   len(bookIDs),
		Bundled:     bundled,
	}, nil
}

func (s *ExportService) addBook(ctx context.Context, zw *zip.Writer, id int) error {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book.FileURL == "" {
		return fmt.Errorf("book %d has no file", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, book.FileURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", book.FileURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %d", book.FileURL, resp.StatusCode)
	}

	entry, err := zw.Create(exportName(book.Title, book.Author))
	if err != nil {
		return err
	}
	_, err = io.Copy(entry, resp.Body)
	return err
}

func exportName(title, author string) string {
	name := unsafeNameChars.ReplaceAllString(title+"_"+author, "_")
	if len(name) > maxExportName {
		name = name[:maxExportName]
	}
	return name + ".pdf"
}
