package storage

import (
	"context"
	"io"
)

// Storage defines the interface for media file storage operations
type Storage interface {
	// Save stores a file under the given name
	Save(ctx context.Context, name string, reader io.Reader) error

	// Delete removes a file; a missing file is not an error
	Delete(ctx context.Context, name string) error

	// Exists checks if a file exists
	Exists(ctx context.Context, name string) (bool, error)

	// URL returns the public URL for the file
	URL(name string) string
}

// Config holds storage configuration
type Config struct {
	BasePath string // Directory for stored files
	BaseURL  string // Public URL prefix
}
