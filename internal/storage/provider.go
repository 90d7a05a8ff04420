// Package storage defines the content file-system abstraction.
package storage

import "github.com/starford/contentlint/internal/models"

// Provider is the interface for read-only content file operations. All paths
// are relative to the content root.
type Provider interface {
	// Root returns the absolute content root.
	Root() string
	// List returns metadata for every matching file directly inside dir.
	List(dir string) ([]models.FileMetadata, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Exists reports whether path names an existing file or directory.
	Exists(path string) bool
}
