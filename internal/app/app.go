// Package app implements the application layer for cdeps.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/tarhses/cdeps/internal/core/domain"
	"github.com/tarhses/cdeps/internal/core/ports"
	"github.com/tarhses/cdeps/internal/engine/mapper"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	collector    ports.Collector
	mapper       *mapper.Mapper
	hasher       ports.Hasher
	store        ports.SnapshotStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	collector ports.Collector,
	m *mapper.Mapper,
	hasher ports.Hasher,
	store ports.SnapshotStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		collector:    collector,
		mapper:       m,
		hasher:       hasher,
		store:        store,
		logger:       logger,
	}
}

// ImpactResult holds the outcome of an impact query.
type ImpactResult struct {
	// Seeds are the unit identifiers the query started from.
	Seeds domain.Set

	// Impacted contains every unit that transitively depends on a seed,
	// the seeds themselves included when they are units.
	Impacted domain.Set

	// Unimpacted contains the remaining units.
	Unimpacted domain.Set

	// Warnings lists the includes that could not be resolved while mapping.
	Warnings []domain.Warning
}

// Scan walks the project, maps every unit's dependencies and records the
// result as the new snapshot. Extra include directories are searched after
// the configured ones.
func (a *App) Scan(ctx context.Context, extraIncludeDirs []string) (*domain.Snapshot, []domain.Warning, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	units, hashes, warnings, err := a.mapProject(ctx, cfg, extraIncludeDirs)
	if err != nil {
		return nil, nil, err
	}

	snapshot := &domain.Snapshot{Units: units, Hashes: hashes}
	if err := a.store.Save(snapshot); err != nil {
		return nil, nil, zerr.Wrap(err, "failed to save snapshot")
	}

	a.logger.Info(fmt.Sprintf("scanned %d units", len(units)))
	return snapshot, warnings, nil
}

// Impact maps the project and partitions its units into impacted and
// unimpacted relative to the given seeds. Seeds are file paths or unit
// identifiers; extensions are ignored. With changed set, the units whose
// files were modified, added or removed since the last snapshot are seeded
// as well.
func (a *App) Impact(ctx context.Context, seeds []string, changed bool, extraIncludeDirs []string) (*ImpactResult, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	units, hashes, warnings, err := a.mapProject(ctx, cfg, extraIncludeDirs)
	if err != nil {
		return nil, err
	}

	seedSet := domain.NewSet()
	for _, seed := range seeds {
		seedSet.Add(normalizeSeed(seed, units))
	}

	if changed {
		snapshot, err := a.store.Load()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load snapshot")
		}
		if snapshot == nil {
			return nil, domain.ErrNoSnapshot
		}
		seedSet.AddAll(snapshot.ChangedUnits(hashes))
	}

	impacted, unimpacted := units.Impact(seedSet)
	return &ImpactResult{
		Seeds:      seedSet,
		Impacted:   impacted,
		Unimpacted: unimpacted,
		Warnings:   warnings,
	}, nil
}

// Pairs walks the project and returns its unit pairs, ordered by unit
// identifier.
func (a *App) Pairs(_ context.Context) ([]domain.UnitPair, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	pairs, _, err := a.collectPairs(cfg)
	if err != nil {
		return nil, err
	}

	sorted := make([]domain.UnitPair, 0, len(pairs))
	for pair := range pairs {
		sorted = append(sorted, pair)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})
	return sorted, nil
}

// normalizeSeed turns a seed argument into a unit identifier. A seed that
// already names a unit is kept as-is; anything else is treated as a file
// path relative to the working directory, so relative seeds line up with
// the absolute unit keys the walker produces.
func normalizeSeed(seed string, units domain.DependencyMap) string {
	unit := domain.TrimExtension(seed)
	if _, ok := units[unit]; ok {
		return unit
	}
	if abs, err := filepath.Abs(unit); err == nil {
		return abs
	}
	return unit
}

// mapProject runs the full pipeline up to the dependency map: collect,
// pair, map, hash.
func (a *App) mapProject(ctx context.Context, cfg *domain.Config, extraIncludeDirs []string) (domain.DependencyMap, map[string]string, []domain.Warning, error) {
	pairs, files, err := a.collectPairs(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	includeDirs := append(append([]string{}, cfg.IncludeDirs...), extraIncludeDirs...)
	units, warnings, err := a.mapper.Map(ctx, pairs, includeDirs)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to map dependencies")
	}

	hashes, err := a.hasher.HashFiles(files)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to hash files")
	}

	return units, hashes, warnings, nil
}

// collectPairs walks the project and pairs its sources and headers. The
// returned file list covers every collected file, sorted.
func (a *App) collectPairs(cfg *domain.Config) (map[domain.UnitPair]struct{}, []string, error) {
	sources, headers, err := a.collector.Collect(cfg.Root, cfg.Ignore)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to collect files")
	}

	files := sources.Clone()
	files.AddAll(headers)

	return domain.Pair(sources, headers), files.Sorted(), nil
}
