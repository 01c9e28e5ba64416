package state

import (
	"io/fs"
	"time"
)

// Entry is what the manifest remembers about one input file.
type Entry struct {
	Size      int64     `json:"size"`
	ModTime   time.Time `json:"mod_time"`
	CroppedAt time.Time `json:"cropped_at"`
}

// Manifest maps input paths (relative to the input root, slash-separated)
// to the entry recorded after their last successful crop.
type Manifest struct {
	Files map[string]Entry `json:"files"`

	// LastRunAt is the time the manifest was last saved
	LastRunAt time.Time `json:"last_run_at"`
}

// NewManifest returns an empty manifest.
func NewManifest() Manifest {
	return Manifest{Files: make(map[string]Entry)}
}

// IsEmpty returns true if no file has been recorded.
func (m Manifest) IsEmpty() bool {
	return len(m.Files) == 0
}

// Unchanged reports whether rel was recorded with the same size and mtime.
func (m Manifest) Unchanged(rel string, info fs.FileInfo) bool {
	e, ok := m.Files[rel]
	if !ok {
		return false
	}
	return e.Size == info.Size() && e.ModTime.Equal(info.ModTime())
}

// Record stores the current size and mtime of rel.
func (m *Manifest) Record(rel string, info fs.FileInfo) {
	if m.Files == nil {
		m.Files = make(map[string]Entry)
	}
	m.Files[rel] = Entry{
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		CroppedAt: time.Now(),
	}
}

// Forget removes rel, e.g. after it failed to crop.
func (m *Manifest) Forget(rel string) {
	delete(m.Files, rel)
}
