package domain

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrNotPDF       = errors.New("uploaded file is not a PDF")
)

// Book is a catalog entry owned by the external record store.
type Book struct {
	ID          int    `json:"book_id,omitempty"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"file_url,omitempty"`
	UploadedBy  string `json:"uploaded_by,omitempty"`
	UploadedAt  string `json:"uploaded_at,omitempty"`
	CategoryID  *int   `json:"category_id,omitempty"`
}
