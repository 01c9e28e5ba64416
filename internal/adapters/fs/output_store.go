package fs

import (
	"context"
	"os"
	"path/filepath"
)

// OutputStore implements ports.OutputStore on the local file system.
type OutputStore struct {
	perm os.FileMode
}

// NewOutputStore creates an OutputStore writing files with mode 0644.
func NewOutputStore() *OutputStore {
	return &OutputStore{perm: 0o644}
}

// WriteFile writes data to path atomically: a temp file in the same
// directory is written, synced and renamed over path.
func (s *OutputStore) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, s.perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
