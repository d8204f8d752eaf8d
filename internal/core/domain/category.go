package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

// Category groups books in the catalog.
type Category struct {
	ID   int    `json:"category_id,omitempty"`
	Name string `json:"category_name"`
}
