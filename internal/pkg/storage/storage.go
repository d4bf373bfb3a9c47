package storage

import (
	"context"
	"io"
)

// FileStorage keeps the raw bytes of uploaded attendance spreadsheets so an
// ingestion can be audited or replayed.
type FileStorage interface {
	// Upload stores a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download retrieves a stored file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)
}
