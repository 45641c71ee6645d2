// Package cpp extracts include directives from C/C++ files.
package cpp

import (
	"bufio"
	"io"
	"os"
	"regexp"

	"github.com/tarhses/cdeps/internal/core/domain"
	"github.com/tarhses/cdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	// Whitespace is allowed between '#' and 'include' and before the
	// target. Targets are captured verbatim, subdirectories included.
	internalPattern = regexp.MustCompile(`#\s*include\s*"(.*)"`)
	externalPattern = regexp.MustCompile(`#\s*include\s*<(.*)>`)
)

var _ ports.IncludeScanner = (*Scanner)(nil)

// Scanner is a line-oriented textual scanner for #include directives. It is
// not a preprocessor: includes inside comments or disabled '#if' branches
// are still reported.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reads the file at path and returns its include targets.
func (s *Scanner) Scan(path string) (domain.Includes, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Includes{}, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	includes, err := s.scan(f)
	if err != nil {
		return domain.Includes{}, zerr.With(err, "path", path)
	}
	return includes, nil
}

// scan applies both patterns to every line independently. Real preprocessor
// syntax allows at most one form per line, but nothing here assumes that.
func (s *Scanner) scan(r io.Reader) (domain.Includes, error) {
	includes := domain.NewIncludes()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if m := internalPattern.FindStringSubmatch(line); m != nil {
			includes.Internal.Add(m[1])
		}
		if m := externalPattern.FindStringSubmatch(line); m != nil {
			includes.External.Add(m[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.Includes{}, zerr.Wrap(err, "failed to read file")
	}

	return includes, nil
}
