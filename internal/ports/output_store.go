package ports

import "context"

// OutputStore persists output artifacts.
type OutputStore interface {
	// WriteFile stores data at path, creating parent directories.
	// A failed write must not leave a partial file at path.
	WriteFile(ctx context.Context, path string, data []byte) error
}
