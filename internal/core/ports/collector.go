package ports

import "github.com/tarhses/cdeps/internal/core/domain"

// Collector defines the interface for gathering candidate files from a
// source tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type Collector interface {
	// Collect walks the tree under root and returns the absolute paths of
	// every source and header file found, classified by extension. Names
	// matching one of the ignore patterns are skipped.
	Collect(root string, ignore []string) (sources, headers domain.Set, err error)
}
