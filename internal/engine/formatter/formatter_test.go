package formatter_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/pinto/internal/core/ports/mocks"
	"go.trai.ch/pinto/internal/engine/formatter"
)

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}
func (nopTracer) Shutdown(context.Context) error { return nil }

type nopSpan struct{}

func (nopSpan) End()                     {}
func (nopSpan) RecordError(error)        {}
func (nopSpan) SetAttribute(string, any) {}

type fixture struct {
	resolver  *mocks.MockProjectResolver
	locator   *mocks.MockBinaryLocator
	cache     *mocks.MockPathCache
	runner    *mocks.MockToolRunner
	consenter *mocks.MockConsenter
	installer *mocks.MockInstaller
	settings  *domain.Settings
	formatter *formatter.Formatter

	boundary string
	root     string
	file     string
	binary   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	f := &fixture{
		resolver:  mocks.NewMockProjectResolver(ctrl),
		locator:   mocks.NewMockBinaryLocator(ctrl),
		cache:     mocks.NewMockPathCache(ctrl),
		runner:    mocks.NewMockToolRunner(ctrl),
		consenter: mocks.NewMockConsenter(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		settings:  domain.DefaultSettings(),
	}

	f.boundary = t.TempDir()
	f.root = filepath.Join(f.boundary, "app")
	f.file = filepath.Join(f.root, "src", "Foo.php")
	f.binary = filepath.Join(f.root, "vendor", "bin", "pint")

	require.NoError(t, os.MkdirAll(filepath.Dir(f.file), 0o750))
	require.NoError(t, os.WriteFile(f.file, []byte("<?php echo 1 ;\n"), 0o644))

	f.formatter = formatter.New(
		f.resolver, f.locator, f.cache, f.runner,
		f.consenter, f.installer, f.settings, log, nopTracer{},
	)
	return f
}

func (f *fixture) request() domain.FormatRequest {
	return domain.FormatRequest{Path: f.file, Boundary: f.boundary}
}

func (f *fixture) expectResolve() {
	f.resolver.EXPECT().Resolve(f.file, f.boundary).Return(f.root, nil)
}

func (f *fixture) expectCachedBinary() {
	f.cache.EXPECT().Get(f.root).Return(f.binary, true)
}

func TestFormatter_Disabled(t *testing.T) {
	f := newFixture(t)
	f.settings.Enabled = false

	_, err := f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrDisabled)
}

func TestFormatter_RejectsNonPHP(t *testing.T) {
	f := newFixture(t)

	_, err := f.formatter.Format(context.Background(), domain.FormatRequest{
		Path:     filepath.Join(f.root, "README.md"),
		Boundary: f.boundary,
	})
	require.ErrorIs(t, err, domain.ErrNotPHPFile)
}

func TestFormatter_AlreadyFormatted(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()
	f.expectCachedBinary()

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv ports.Invocation) (*ports.ExecResult, error) {
			assert.Equal(t, f.binary, inv.Bin)
			assert.Equal(t, []string{filepath.Join("src", "Foo.php"), "--test"}, inv.Args)
			assert.Equal(t, f.root, inv.Dir)
			return &ports.ExecResult{ExitCode: 0}, nil
		})

	result, err := f.formatter.Format(context.Background(), f.request())
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.False(t, result.Applied)
	assert.Equal(t, []byte("<?php echo 1 ;\n"), result.Content)
	assert.Equal(t, f.root, result.Root)
	assert.Equal(t, f.binary, result.Binary)
}

func TestFormatter_AppliesAndRereadsFromDisk(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()
	f.expectCachedBinary()

	gomock.InOrder(
		f.runner.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv ports.Invocation) (*ports.ExecResult, error) {
				assert.Contains(t, inv.Args, "--test")
				return &ports.ExecResult{ExitCode: 1, Stdout: []byte("1 style issue")}, nil
			}),
		f.runner.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv ports.Invocation) (*ports.ExecResult, error) {
				assert.NotContains(t, inv.Args, "--test")
				// pint rewrites the file in place.
				require.NoError(t, os.WriteFile(f.file, []byte("<?php echo 1;\n"), 0o644))
				return &ports.ExecResult{ExitCode: 0}, nil
			}),
	)

	result, err := f.formatter.Format(context.Background(), f.request())
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.True(t, result.Changed)
	assert.Equal(t, []byte("<?php echo 1;\n"), result.Content)
}

func TestFormatter_ApplyLeavesFileUntouched(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()
	f.expectCachedBinary()

	gomock.InOrder(
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(&ports.ExecResult{ExitCode: 1, Stdout: []byte("issues")}, nil),
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(&ports.ExecResult{ExitCode: 0}, nil),
	)

	result, err := f.formatter.Format(context.Background(), f.request())
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.False(t, result.Changed, "identical content must not count as changed")
}

func TestFormatter_UnexpectedCheckExit(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()
	f.expectCachedBinary()

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&ports.ExecResult{ExitCode: 2, Stderr: []byte("parse error")}, nil)

	_, err := f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrProcessFailed)
}

func TestFormatter_CheckExitOneWithoutOutputFails(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()
	f.expectCachedBinary()

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&ports.ExecResult{ExitCode: 1}, nil)

	_, err := f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrProcessFailed)
}

func TestFormatter_ApplyFailure(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()
	f.expectCachedBinary()

	gomock.InOrder(
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(&ports.ExecResult{ExitCode: 1, Stdout: []byte("issues")}, nil),
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(&ports.ExecResult{ExitCode: 255, Stderr: []byte("disk full")}, nil),
	)

	_, err := f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrFormatFailed)
}

func TestFormatter_LocatesAndCachesBinary(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()

	gomock.InOrder(
		f.cache.EXPECT().Get(f.root).Return("", false),
		f.locator.EXPECT().Find(f.root).Return(f.binary, nil),
		f.cache.EXPECT().Set(f.root, f.binary),
	)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&ports.ExecResult{ExitCode: 0}, nil)

	result, err := f.formatter.Format(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, f.binary, result.Binary)
}

func TestFormatter_InstallDeclined(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()

	f.cache.EXPECT().Get(f.root).Return("", false)
	f.locator.EXPECT().Find(f.root).Return("", nil)
	f.consenter.EXPECT().Confirm(gomock.Any()).Return(false, nil)

	_, err := f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrInstallDeclined)
}

func TestFormatter_DeclineIsRememberedPerRoot(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(f.file, f.boundary).Return(f.root, nil).Times(2)
	f.cache.EXPECT().Get(f.root).Return("", false).Times(2)
	f.locator.EXPECT().Find(f.root).Return("", nil).Times(2)

	// The prompt fires exactly once.
	f.consenter.EXPECT().Confirm(gomock.Any()).Return(false, nil).Times(1)

	_, err := f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrInstallDeclined)

	_, err = f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrInstallDeclined)
}

func TestFormatter_InstallAccepted(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()

	gomock.InOrder(
		f.cache.EXPECT().Get(f.root).Return("", false),
		f.locator.EXPECT().Find(f.root).Return("", nil),
		f.consenter.EXPECT().Confirm(gomock.Any()).Return(true, nil),
		f.installer.EXPECT().Install(gomock.Any(), f.root).Return(nil),
		f.locator.EXPECT().Find(f.root).Return(f.binary, nil),
		f.cache.EXPECT().Set(f.root, f.binary),
	)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&ports.ExecResult{ExitCode: 0}, nil)

	result, err := f.formatter.Format(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, f.binary, result.Binary)
}

func TestFormatter_InstallSucceedsButBinaryStillMissing(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()

	gomock.InOrder(
		f.cache.EXPECT().Get(f.root).Return("", false),
		f.locator.EXPECT().Find(f.root).Return("", nil),
		f.consenter.EXPECT().Confirm(gomock.Any()).Return(true, nil),
		f.installer.EXPECT().Install(gomock.Any(), f.root).Return(nil),
		f.locator.EXPECT().Find(f.root).Return("", nil),
	)

	_, err := f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrInstallFailed)
}

func TestFormatter_InstallFailurePropagates(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()

	gomock.InOrder(
		f.cache.EXPECT().Get(f.root).Return("", false),
		f.locator.EXPECT().Find(f.root).Return("", nil),
		f.consenter.EXPECT().Confirm(gomock.Any()).Return(true, nil),
		f.installer.EXPECT().Install(gomock.Any(), f.root).Return(domain.ErrInstallFailed),
	)

	_, err := f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrInstallFailed)
}

func TestFormatter_NestedVendorRunsFromBinaryRoot(t *testing.T) {
	f := newFixture(t)

	// The discovered binary lives in a package nested below the resolved
	// root; pint must run from the package's own root.
	pkgRoot := filepath.Join(f.root, "packages", "api")
	f.file = filepath.Join(pkgRoot, "src", "Foo.php")
	f.binary = filepath.Join(pkgRoot, "vendor", "bin", "pint")
	require.NoError(t, os.MkdirAll(filepath.Dir(f.file), 0o750))
	require.NoError(t, os.WriteFile(f.file, []byte("<?php echo 1 ;\n"), 0o644))

	f.resolver.EXPECT().Resolve(f.file, f.boundary).Return(f.root, nil)
	f.cache.EXPECT().Get(f.root).Return(f.binary, true)

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv ports.Invocation) (*ports.ExecResult, error) {
			assert.Equal(t, pkgRoot, inv.Dir)
			assert.Equal(t, []string{filepath.Join("src", "Foo.php"), "--test"}, inv.Args)
			return &ports.ExecResult{ExitCode: 0}, nil
		})

	result, err := f.formatter.Format(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, f.root, result.Root)
}

func TestFormatter_RunnerTimeoutPropagates(t *testing.T) {
	f := newFixture(t)
	f.expectResolve()
	f.expectCachedBinary()

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&ports.ExecResult{TimedOut: true, ExitCode: -1}, domain.ErrProcessTimeout)

	_, err := f.formatter.Format(context.Background(), f.request())
	require.ErrorIs(t, err, domain.ErrProcessTimeout)
}
