package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarhses/cdeps/cmd/cdeps/commands"
	"github.com/tarhses/cdeps/internal/adapters/telemetry"
	"github.com/tarhses/cdeps/internal/app"
	"github.com/tarhses/cdeps/internal/build"
	"github.com/tarhses/cdeps/internal/core/domain"
	"github.com/tarhses/cdeps/internal/core/ports/mocks"
	"github.com/tarhses/cdeps/internal/engine/mapper"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli     *commands.CLI
	out     *bytes.Buffer
	loader  *mocks.MockConfigLoader
	collect *mocks.MockCollector
	scanner *mocks.MockIncludeScanner
	hasher  *mocks.MockHasher
	store   *mocks.MockSnapshotStore
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &cliFixture{
		out:     &bytes.Buffer{},
		loader:  mocks.NewMockConfigLoader(ctrl),
		collect: mocks.NewMockCollector(ctrl),
		scanner: mocks.NewMockIncludeScanner(ctrl),
		hasher:  mocks.NewMockHasher(ctrl),
		store:   mocks.NewMockSnapshotStore(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	resolver := mocks.NewMockIncludeResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(name, _ string, _ []string) (string, error) {
			return name, nil
		}).AnyTimes()

	m := mapper.NewMapper(f.scanner, resolver, logger, telemetry.NewNoOp())
	f.cli = commands.New(app.New(f.loader, f.collect, m, f.hasher, f.store, logger))
	f.cli.SetOutput(f.out)
	return f
}

// expectProject scripts a three unit project where a depends on b and c
// stands alone.
func (f *cliFixture) expectProject() {
	f.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	f.collect.EXPECT().Collect(".", gomock.Nil()).
		Return(domain.NewSet("a.c", "c.c"), domain.NewSet("b.h"), nil)

	f.scanner.EXPECT().Scan("a.c").
		Return(domain.Includes{Internal: domain.NewSet("b.h"), External: domain.NewSet()}, nil)
	f.scanner.EXPECT().Scan("b.h").Return(domain.NewIncludes(), nil)
	f.scanner.EXPECT().Scan("c.c").Return(domain.NewIncludes(), nil)

	f.hasher.EXPECT().HashFiles([]string{"a.c", "b.h", "c.c"}).
		Return(map[string]string{"a.c": "h1", "b.h": "h2", "c.c": "h3"}, nil)
}

func TestScan_PrintsDependencyMap(t *testing.T) {
	f := newCLIFixture(t)
	f.expectProject()
	f.store.EXPECT().Save(gomock.Any()).Return(nil)

	f.cli.SetArgs([]string{"scan"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.JSONEq(t, `{"a": ["b"], "b": [], "c": []}`, f.out.String())
}

func TestImpact_PrintsImpactedUnits(t *testing.T) {
	f := newCLIFixture(t)
	f.expectProject()

	f.cli.SetArgs([]string{"impact", "b.h"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Equal(t, "a\nb\n", f.out.String())
}

func TestImpact_InvertPrintsUnimpactedUnits(t *testing.T) {
	f := newCLIFixture(t)
	f.expectProject()

	f.cli.SetArgs([]string{"impact", "--invert", "b.h"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Equal(t, "c\n", f.out.String())
}

func TestImpact_NoSeedsShowsHelp(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"impact"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Contains(t, f.out.String(), "Usage:")
}

func TestImpact_Changed(t *testing.T) {
	f := newCLIFixture(t)
	f.expectProject()
	f.store.EXPECT().Load().Return(&domain.Snapshot{
		Units:  domain.DependencyMap{},
		Hashes: map[string]string{"a.c": "h1", "b.h": "stale", "c.c": "h3"},
	}, nil)

	f.cli.SetArgs([]string{"impact", "--changed"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Equal(t, "a\nb\n", f.out.String())
}

func TestPairs_ListsUnits(t *testing.T) {
	f := newCLIFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	f.collect.EXPECT().Collect(".", gomock.Nil()).
		Return(domain.NewSet("a.c", "z.c"), domain.NewSet("a.h", "b.h"), nil)

	f.cli.SetArgs([]string{"pairs"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Equal(t, "a.c + a.h\nb.h\nz.c\n", f.out.String())
}

func TestVersion(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Equal(t, "cdeps version "+build.Version+"\n", f.out.String())
}
