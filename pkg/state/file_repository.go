package state

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileName is the manifest file name inside the output root.
const FileName = "sigcrop-state.json"

// FileRepository implements Repository using a JSON file.
type FileRepository struct {
	dir string
}

// NewFileRepository creates a new FileRepository for the given directory.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// Load retrieves the last saved manifest from disk.
// Returns an empty manifest and nil error if no manifest file exists.
func (r *FileRepository) Load(ctx context.Context) (Manifest, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return NewManifest(), nil
		}
		return Manifest{}, err
	}

	m := NewManifest()
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	if m.Files == nil {
		m.Files = make(map[string]Entry)
	}
	return m, nil
}

// Save persists the manifest atomically (temp file, then rename).
func (r *FileRepository) Save(ctx context.Context, m Manifest) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	m.LastRunAt = time.Now()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	tmp := r.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.Path())
}

// Path returns the full path to the manifest file.
func (r *FileRepository) Path() string {
	return filepath.Join(r.dir, FileName)
}
