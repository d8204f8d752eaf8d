package storage

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestLocal_SaveAndResolve(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := store.Save("report.pdf", strings.NewReader("%PDF-1.4 content"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, "_report.pdf") {
		t.Fatalf("unexpected file URL %q", url)
	}

	name := strings.TrimPrefix(url, "/uploads/")
	path, err := store.Resolve(name)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "%PDF-1.4 content" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestLocal_SaveStripsDirectories(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(url, "..") || !strings.HasSuffix(url, "_passwd") {
		t.Fatalf("directory components survived: %q", url)
	}
}

func TestLocal_SaveUniqueNames(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	first, err := store.Save("book.pdf", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := store.Save("book.pdf", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if first == second {
		t.Fatalf("identical uploads collided on %q", first)
	}
}

func TestLocal_ResolveRejectsTraversal(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	for _, name := range []string{"..", ""} {
		if _, err := store.Resolve(name); !errors.Is(err, ErrInvalidFilename) {
			t.Fatalf("Resolve(%q) = %v, want ErrInvalidFilename", name, err)
		}
	}
	// Cleaned traversal collapses inside the root; it must not escape it.
	if _, err := store.Resolve("a/../../b"); err == nil {
		t.Fatalf("Resolve accepted a nonexistent traversal path")
	}
}
