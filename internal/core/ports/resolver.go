package ports

// IncludeResolver defines the interface for turning a quoted include target
// into a concrete on-disk path.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type IncludeResolver interface {
	// Resolve searches currentDir first, then includeDirs in the order
	// given, and returns the first existing candidate path. It returns an
	// error wrapping domain.ErrIncludeNotFound when no candidate exists.
	Resolve(name, currentDir string, includeDirs []string) (string, error)
}
