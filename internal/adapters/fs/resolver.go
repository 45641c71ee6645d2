package fs

import (
	"os"
	"path/filepath"

	"github.com/tarhses/cdeps/internal/core/domain"
	"github.com/tarhses/cdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IncludeResolver = (*Resolver)(nil)

// Resolver locates quoted include targets on disk using an ordered search
// path, the way a C preprocessor would for the directories it knows about.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve searches for name in currentDir first, then in includeDirs in the
// order given, and returns the first candidate that exists on disk. First
// match wins; later directories are not consulted.
//
// On failure it returns an error wrapping domain.ErrIncludeNotFound whose
// metadata carries the attempted name and the full searched directory list.
func (r *Resolver) Resolve(name, currentDir string, includeDirs []string) (string, error) {
	searched := make([]string, 0, 1+len(includeDirs))
	for _, dir := range append([]string{currentDir}, includeDirs...) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to absolutize include dir"), "dir", dir)
		}
		searched = append(searched, abs)
	}

	for _, dir := range searched {
		path := filepath.Clean(filepath.Join(dir, name))
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	// Wrap first: attaching metadata copies the error, so metadata on the
	// bare sentinel would break errors.Is matching.
	err := zerr.Wrap(domain.ErrIncludeNotFound, "failed to resolve include")
	return "", zerr.With(zerr.With(err, "include", name), "searched_dirs", searched)
}
