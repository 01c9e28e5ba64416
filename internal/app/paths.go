package app

import (
	"path/filepath"
	"strings"
)

// OutputPath maps a relative input path to its place under the output root.
func OutputPath(outputDir, rel string) string {
	return filepath.Join(outputDir, filepath.FromSlash(rel))
}

// ImagePath derives the diagnostic image path from an output recording path
// by replacing the record suffix with the image suffix. When path does not
// end with recordSuffix the image suffix is appended.
func ImagePath(path, recordSuffix, imageSuffix string) string {
	n := len(path) - len(recordSuffix)
	if n >= 0 && strings.EqualFold(path[n:], recordSuffix) {
		return path[:n] + imageSuffix
	}
	return path + imageSuffix
}
