package ports

import "github.com/tarhses/cdeps/internal/core/domain"

// IncludeScanner defines the interface for extracting include directives
// from a single file.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type IncludeScanner interface {
	// Scan reads the file at path and returns its quoted (internal) and
	// angle-bracket (external) include targets, verbatim. An unreadable
	// file is an error: the caller listed it, so the input set is
	// inconsistent.
	Scan(path string) (domain.Includes, error)
}
