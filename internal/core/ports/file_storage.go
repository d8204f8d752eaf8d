package ports

import "io"

// FileStorage persists uploaded documents and resolves stored names back to
// servable paths.
type FileStorage interface {
	// Save writes the file under a collision-free name and returns the
	// public URL path it will be served from.
	Save(filename string, r io.Reader) (string, error)
	// Resolve maps a stored file name to an absolute path, rejecting names
	// that escape the storage root.
	Resolve(filename string) (string, error)
}
