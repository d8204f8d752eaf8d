package ports

import "context"

// ExportResult describes a finished bundle export.
type ExportResult struct {
	ZipPath     string `json:"zipFilePath"`
	DownloadURL string `json:"downloadUrl"`
	Requested   int    `json:"requested"`
	Bundled     int    `json:"bundled"`
}

// ExportService bundles the files of the requested books into a zip archive.
type ExportService interface {
	ExportBooks(ctx context.Context, bookIDs []int) (*ExportResult, error)
}
