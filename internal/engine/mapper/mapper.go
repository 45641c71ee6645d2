// Package mapper implements the dependency mapping engine: it turns unit
// pairs into a dependency map by scanning includes and resolving them
// against the search path.
package mapper

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/tarhses/cdeps/internal/core/domain"
	"github.com/tarhses/cdeps/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Mapper builds dependency maps from unit pairs.
type Mapper struct {
	scanner   ports.IncludeScanner
	resolver  ports.IncludeResolver
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewMapper creates a new Mapper.
func NewMapper(
	scanner ports.IncludeScanner,
	resolver ports.IncludeResolver,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Mapper {
	return &Mapper{
		scanner:   scanner,
		resolver:  resolver,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Map produces the dependency map for the given pairs. Every pair yields
// exactly one entry, empty dependency sets included.
//
// Quoted includes are resolved against the unit's own directory first, then
// includeDirs in the order given; unresolvable ones are dropped from the
// unit's dependency set and reported as warnings, never as errors. Angle
// bracket includes become opaque library identifiers without touching the
// filesystem. A unit never depends on itself.
//
// Pairs are mapped concurrently; each pair's work is independent, so only
// the merge into the shared map is synchronized. An unreadable file aborts
// the whole mapping: the caller supplied its path, so the input set is
// inconsistent.
func (m *Mapper) Map(
	ctx context.Context,
	pairs map[domain.UnitPair]struct{},
	includeDirs []string,
) (domain.DependencyMap, []domain.Warning, error) {
	units := make(domain.DependencyMap, len(pairs))
	var warnings []domain.Warning
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for pair := range pairs {
		g.Go(func() error {
			deps, warns, err := m.mapPair(ctx, pair, includeDirs)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			units[pair.Name()] = deps
			warnings = append(warnings, warns...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Concurrency scrambles warning order; sort for stable output.
	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].Unit != warnings[j].Unit {
			return warnings[i].Unit < warnings[j].Unit
		}
		return warnings[i].Include < warnings[j].Include
	})

	return units, warnings, nil
}

// mapPair computes the dependency set of a single pair.
func (m *Mapper) mapPair(
	ctx context.Context,
	pair domain.UnitPair,
	includeDirs []string,
) (domain.Set, []domain.Warning, error) {
	unit := pair.Name()
	currentDir := filepath.Dir(unit)

	_, vertex := m.telemetry.Record(ctx, "map "+unit)

	includes, err := m.scanPair(pair)
	if err != nil {
		vertex.Complete(err)
		return nil, nil, err
	}

	deps := domain.NewSet()
	var warnings []domain.Warning

	for _, include := range includes.Internal.Sorted() {
		path, err := m.resolver.Resolve(include, currentDir, includeDirs)
		if err != nil {
			if !errors.Is(err, domain.ErrIncludeNotFound) {
				vertex.Complete(err)
				return nil, nil, err
			}
			warning := domain.Warning{
				Unit:         unit,
				Include:      include,
				SearchedDirs: searchedDirs(err, currentDir, includeDirs),
			}
			warnings = append(warnings, warning)
			m.logger.Warn(warning.String())
			vertex.Log(domain.LogLevelWarn, warning.String())
			continue
		}

		dep := domain.TrimExtension(path)
		if dep != unit {
			deps.Add(dep)
		}
	}

	for include := range includes.External {
		deps.Add(domain.TrimExtension(include))
	}

	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d dependencies", len(deps)))
	vertex.Complete(nil)
	return deps, warnings, nil
}

// scanPair merges the include targets of both members of the pair.
func (m *Mapper) scanPair(pair domain.UnitPair) (domain.Includes, error) {
	includes := domain.NewIncludes()

	if pair.HasSource() {
		found, err := m.scanner.Scan(pair.Source)
		if err != nil {
			// Wrap first so errors.Is still matches err after the metadata
			// copy.
			return domain.Includes{}, zerr.With(zerr.Wrap(err, "failed to scan unit"), "unit", pair.Name())
		}
		includes.Merge(found)
	}
	if pair.HasHeader() {
		found, err := m.scanner.Scan(pair.Header)
		if err != nil {
			// Wrap first so errors.Is still matches err after the metadata
			// copy.
			return domain.Includes{}, zerr.With(zerr.Wrap(err, "failed to scan unit"), "unit", pair.Name())
		}
		includes.Merge(found)
	}

	return includes, nil
}

// searchedDirs pulls the searched directory list out of the resolver's
// error metadata, falling back to the raw search order.
func searchedDirs(err error, currentDir string, includeDirs []string) []string {
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if dirs, ok := zErr.Metadata()["searched_dirs"].([]string); ok {
			return dirs
		}
	}
	return append([]string{currentDir}, includeDirs...)
}
