// Package domain contains the core domain models and business logic for the
// include dependency graph.
package domain

import (
	"path/filepath"
	"strings"
)

// SourceExtensions lists the file extensions recognized as C/C++ sources.
// The order is significant: it is the priority order used when searching for
// the source counterpart of a header.
var SourceExtensions = []string{".c", ".cc", ".cp", ".cxx", ".cpp", ".c++", ".C"}

// HeaderExtensions lists the file extensions recognized as C/C++ headers.
// The order is significant: it is the priority order used when searching for
// the header counterpart of a source.
var HeaderExtensions = []string{".h", ".hpp"}

// HasExtension reports whether path ends with one of the given extensions.
func HasExtension(path string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// IsSource reports whether path has a recognized C/C++ source extension.
func IsSource(path string) bool {
	return HasExtension(path, SourceExtensions)
}

// IsHeader reports whether path has a recognized C/C++ header extension.
func IsHeader(path string) bool {
	return HasExtension(path, HeaderExtensions)
}

// TrimExtension removes the final extension of a filename, if any.
// A name without an extension is returned unchanged, and a leading dot
// alone (e.g. ".gitignore") does not count as an extension.
func TrimExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" || ext == filepath.Base(path) {
		return path
	}
	return strings.TrimSuffix(path, ext)
}
