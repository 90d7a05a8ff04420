package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/starford/contentlint/internal/apperr"
	"github.com/starford/contentlint/internal/models"
)

// DefaultPattern selects markdown documents.
const DefaultPattern = "*.md"

// FSOption configures an FS provider.
type FSOption func(*FS)

// WithPattern sets the glob a file name must match to be listed.
func WithPattern(pattern string) FSOption {
	return func(f *FS) {
		if pattern != "" {
			f.pattern = pattern
		}
	}
}

// WithExclude sets globs for file names that are never listed.
func WithExclude(patterns ...string) FSOption {
	return func(f *FS) {
		f.exclude = append(f.exclude, patterns...)
	}
}

// FS implements Provider backed by the local file system.
type FS struct {
	root    string // absolute path to the content root
	pattern string
	exclude []string
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string, opts ...FSOption) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root %s: %w", abs, apperr.ErrNotDirectory)
	}

	f := &FS{root: abs, pattern: DefaultPattern}
	for _, opt := range opts {
		opt(f)
	}
	for _, p := range append([]string{f.pattern}, f.exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("storage: invalid pattern %q", p)
		}
	}
	return f, nil
}

// Root returns the absolute content root.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a relative path against the content root and rejects
// any result that escapes it (directory traversal). A leading slash is
// treated as root-relative.
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(strings.TrimLeft(filepath.FromSlash(rel), string(os.PathSeparator)))
	abs := filepath.Join(f.root, cleaned)
	// Ensure the resolved path is still under root.
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: %s: %w", rel, apperr.ErrPathEscapesRoot)
	}
	return abs, nil
}

// List returns metadata for the files directly inside dir whose names match
// the configured pattern, in directory order. File contents are not read, so
// an unreadable file is still listed and fails later in Read.
func (f *FS) List(dir string) ([]models.FileMetadata, error) {
	base, err := f.safePath(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(base)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("storage: list %s: %w", dir, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: list %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: list %s: %w", dir, apperr.ErrNotDirectory)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("storage: list %s: %w", dir, err)
	}

	var out []models.FileMetadata
	for _, e := range entries {
		if e.IsDir() || !f.matches(e.Name()) {
			continue
		}
		p := filepath.Join(base, e.Name())
		rel, err := filepath.Rel(f.root, p)
		if err != nil {
			return nil, fmt.Errorf("storage: rel %s: %w", p, err)
		}
		meta := models.FileMetadata{Path: filepath.ToSlash(rel)}
		// A file removed after ReadDir keeps a zero mod time.
		if info, err := e.Info(); err == nil {
			meta.UpdatedAt = info.ModTime()
		}
		out = append(out, meta)
	}
	return out, nil
}

func (f *FS) matches(name string) bool {
	if ok, _ := doublestar.Match(f.pattern, name); !ok {
		return false
	}
	for _, ex := range f.exclude {
		if ok, _ := doublestar.Match(ex, name); ok {
			return false
		}
	}
	return true
}

// Read returns the raw bytes of a content file.
func (f *FS) Read(path string) ([]byte, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// Exists reports whether path exists under the content root. Paths that
// escape the root never exist.
func (f *FS) Exists(path string) bool {
	abs, err := f.safePath(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(abs)
	return err == nil
}
