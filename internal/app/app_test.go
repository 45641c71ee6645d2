package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarhses/cdeps/internal/adapters/cpp"
	"github.com/tarhses/cdeps/internal/adapters/fs"
	"github.com/tarhses/cdeps/internal/adapters/telemetry"
	"github.com/tarhses/cdeps/internal/app"
	"github.com/tarhses/cdeps/internal/core/domain"
	"github.com/tarhses/cdeps/internal/core/ports/mocks"
	"github.com/tarhses/cdeps/internal/engine/mapper"
	"go.uber.org/mock/gomock"
)

// fixture wires an App around mocked ports so tests can script the whole
// pipeline without touching the filesystem.
type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	collect  *mocks.MockCollector
	scanner  *mocks.MockIncludeScanner
	resolver *mocks.MockIncludeResolver
	hasher   *mocks.MockHasher
	store    *mocks.MockSnapshotStore
	logger   *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		collect:  mocks.NewMockCollector(ctrl),
		scanner:  mocks.NewMockIncludeScanner(ctrl),
		resolver: mocks.NewMockIncludeResolver(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		store:    mocks.NewMockSnapshotStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	m := mapper.NewMapper(f.scanner, f.resolver, f.logger, telemetry.NewNoOp())
	f.app = app.New(f.loader, f.collect, m, f.hasher, f.store, f.logger)
	return f
}

func (f *fixture) expectConfig(cfg *domain.Config) {
	f.loader.EXPECT().Load(".").Return(cfg, nil)
}

// expectProject scripts a project of three units where a depends on b and
// c stands alone.
func (f *fixture) expectProject(hashes map[string]string) {
	f.collect.EXPECT().Collect(".", gomock.Nil()).
		Return(domain.NewSet("a.c", "c.c"), domain.NewSet("b.h"), nil)

	f.scanner.EXPECT().Scan("a.c").
		Return(domain.Includes{Internal: domain.NewSet("b.h"), External: domain.NewSet()}, nil)
	f.scanner.EXPECT().Scan("b.h").
		Return(domain.NewIncludes(), nil)
	f.scanner.EXPECT().Scan("c.c").
		Return(domain.NewIncludes(), nil)

	f.resolver.EXPECT().Resolve("b.h", ".", []string{}).Return("b.h", nil)

	f.hasher.EXPECT().HashFiles([]string{"a.c", "b.h", "c.c"}).Return(hashes, nil)
}

func TestScan_SavesSnapshot(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultConfig())

	hashes := map[string]string{"a.c": "h1", "b.h": "h2", "c.c": "h3"}
	f.expectProject(hashes)

	var saved *domain.Snapshot
	f.store.EXPECT().Save(gomock.Any()).DoAndReturn(func(s *domain.Snapshot) error {
		saved = s
		return nil
	})

	snapshot, warnings, err := f.app.Scan(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Same(t, snapshot, saved)

	assert.Equal(t, hashes, snapshot.Hashes)
	require.Len(t, snapshot.Units, 3)
	assert.True(t, snapshot.Units["a"].Equal(domain.NewSet("b")))
	assert.Empty(t, snapshot.Units["b"])
	assert.Empty(t, snapshot.Units["c"])
}

func TestScan_AppendsExtraIncludeDirs(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(&domain.Config{
		Root:         ".",
		IncludeDirs:  []string{"include"},
		SnapshotPath: domain.DefaultSnapshotPath,
	})

	f.collect.EXPECT().Collect(".", gomock.Nil()).
		Return(domain.NewSet("a.c"), domain.NewSet(), nil)
	f.scanner.EXPECT().Scan("a.c").
		Return(domain.Includes{Internal: domain.NewSet("util.h"), External: domain.NewSet()}, nil)
	f.resolver.EXPECT().Resolve("util.h", ".", []string{"include", "vendor"}).
		Return("vendor/util.h", nil)
	f.hasher.EXPECT().HashFiles([]string{"a.c"}).Return(map[string]string{"a.c": "h1"}, nil)
	f.store.EXPECT().Save(gomock.Any()).Return(nil)

	snapshot, _, err := f.app.Scan(context.Background(), []string{"vendor"})
	require.NoError(t, err)
	assert.True(t, snapshot.Units["a"].Equal(domain.NewSet("vendor/util")))
}

func TestImpact_ExplicitSeeds(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultConfig())
	f.expectProject(map[string]string{"a.c": "h1", "b.h": "h2", "c.c": "h3"})

	result, err := f.app.Impact(context.Background(), []string{"b.h"}, false, nil)
	require.NoError(t, err)

	assert.True(t, result.Seeds.Equal(domain.NewSet("b")))
	assert.True(t, result.Impacted.Equal(domain.NewSet("a", "b")))
	assert.True(t, result.Unimpacted.Equal(domain.NewSet("c")))
	assert.Empty(t, result.Warnings)
}

func TestImpact_RelativePathSeeds(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.c"), []byte("#include \"util.h\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "util.c"), []byte("#include \"util.h\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "util.h"), []byte(""), 0o600))

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	defer func() {
		_ = os.Chdir(originalWd)
	}()
	wd, err := os.Getwd()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	m := mapper.NewMapper(cpp.NewScanner(), fs.NewResolver(), logger, telemetry.NewNoOp())
	a := app.New(loader, fs.NewWalker(), m, fs.NewHasher(), mocks.NewMockSnapshotStore(ctrl), logger)

	// The walker keys units by absolute path; a seed given as a relative
	// file path must still reach them.
	result, err := a.Impact(context.Background(), []string{"util.h"}, false, nil)
	require.NoError(t, err)

	assert.True(t, result.Seeds.Equal(domain.NewSet(filepath.Join(wd, "util"))))
	assert.True(t, result.Impacted.Equal(domain.NewSet(
		filepath.Join(wd, "main"),
		filepath.Join(wd, "util"),
	)))
	assert.Empty(t, result.Unimpacted)
}

func TestImpact_ChangedSeedsFromSnapshotDiff(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultConfig())
	f.expectProject(map[string]string{"a.c": "h1", "b.h": "h2-modified", "c.c": "h3"})

	f.store.EXPECT().Load().Return(&domain.Snapshot{
		Units:  domain.DependencyMap{},
		Hashes: map[string]string{"a.c": "h1", "b.h": "h2", "c.c": "h3"},
	}, nil)

	result, err := f.app.Impact(context.Background(), nil, true, nil)
	require.NoError(t, err)

	assert.True(t, result.Seeds.Equal(domain.NewSet("b")))
	assert.True(t, result.Impacted.Equal(domain.NewSet("a", "b")))
	assert.True(t, result.Unimpacted.Equal(domain.NewSet("c")))
}

func TestImpact_ChangedWithoutSnapshot(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultConfig())
	f.expectProject(map[string]string{"a.c": "h1", "b.h": "h2", "c.c": "h3"})

	f.store.EXPECT().Load().Return(nil, nil)

	_, err := f.app.Impact(context.Background(), nil, true, nil)
	assert.ErrorIs(t, err, domain.ErrNoSnapshot)
}

func TestPairs_SortedByUnit(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultConfig())
	f.collect.EXPECT().Collect(".", gomock.Nil()).
		Return(domain.NewSet("z.c", "a.c"), domain.NewSet("a.h"), nil)

	pairs, err := f.app.Pairs(context.Background())
	require.NoError(t, err)

	require.Len(t, pairs, 2)
	assert.Equal(t, domain.UnitPair{Source: "a.c", Header: "a.h"}, pairs[0])
	assert.Equal(t, domain.UnitPair{Source: "z.c"}, pairs[1])
}
