// Package storage persists uploaded documents on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidFilename = errors.New("invalid file name")

// Local stores files under a single uploads directory and serves them back
// by name. Stored names are prefixed with a UUID so concurrent uploads of
// the same file never collide.
type Local struct {
	root string
}

func NewLocal(root string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{root: abs}, nil
}

// Save writes the file and returns the URL path it is served from.
func (l *Local) Save(filename string, r io.Reader) (string, error) {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "", ErrInvalidFilename
	}
	stored := uuid.NewString() + "_" + base

	f, err := os.Create(filepath.Join(l.root, stored))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return "/uploads/" + stored, nil
}

// Resolve maps a stored name back to an absolute path. Names that escape
// the storage root are rejected.
func (l *Local) Resolve(filename string) (string, error) {
	path := filepath.Join(l.root, filepath.Clean("/"+filename))
	if !strings.HasPrefix(path, l.root+string(filepath.Separator)) {
		return "", ErrInvalidFilename
	}
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
