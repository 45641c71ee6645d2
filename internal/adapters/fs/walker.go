// Package fs provides file system adapters for walking, classifying and
// hashing files, and for resolving include paths.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/tarhses/cdeps/internal/core/domain"
	"github.com/tarhses/cdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Collector = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Collect walks the tree under root and classifies every file by extension,
// returning the absolute paths of sources and headers as two separate sets.
// Files that are neither are ignored.
func (w *Walker) Collect(root string, ignore []string) (sources, headers domain.Set, err error) {
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to absolutize root"), "root", root)
	}

	sources = domain.NewSet()
	headers = domain.NewSet()
	for path := range w.WalkFiles(root, ignore) {
		switch {
		case domain.IsSource(path):
			sources.Add(path)
		case domain.IsHeader(path):
			headers.Add(path)
		}
	}
	return sources, headers, nil
}

// WalkFiles yields every file under root, skipping VCS directories and
// names matching the ignore patterns. Paths start with root, so an absolute
// root yields absolute paths.
func (w *Walker) WalkFiles(root string, ignore []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			switch action := w.shouldSkip(d, ignore); {
			case action == errSkipFile:
				return nil
			case action != nil:
				return action
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// errSkipFile tells WalkFiles to drop a single file without pruning.
var errSkipFile = zerr.New("skip file")

// shouldSkip checks an entry against the VCS directories and the ignore
// patterns. It returns filepath.SkipDir to prune a directory, errSkipFile
// to drop a file, or nil to continue.
func (w *Walker) shouldSkip(d fs.DirEntry, ignore []string) error {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return filepath.SkipDir
	}

	for _, pattern := range ignore {
		matched, _ := filepath.Match(pattern, name)
		if matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return errSkipFile
		}
	}

	return nil
}
