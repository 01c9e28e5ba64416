package fs

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Discover walks root recursively and returns the slash-separated paths,
// relative to root, of regular files whose name ends with suffix in any case.
// Directories listed in skip (absolute or relative to the working
// directory) are not descended into. Paths come back in lexical order.
func Discover(root, suffix string, skip ...string) ([]string, error) {
	skipAbs := make(map[string]bool, len(skip))
	for _, s := range skip {
		if abs, err := filepath.Abs(s); err == nil {
			skipAbs[abs] = true
		}
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipAbs[absOrSelf(path)] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !MatchSuffix(d.Name(), suffix) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		found = append(found, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// MatchSuffix reports whether name ends with suffix, ignoring case.
func MatchSuffix(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(suffix))
}

// Within reports whether path lies inside dir (or is dir).
func Within(path, dir string) bool {
	rel, err := filepath.Rel(absOrSelf(dir), absOrSelf(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func absOrSelf(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
