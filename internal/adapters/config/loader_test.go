package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/pinto/internal/adapters/config"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports/mocks"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pinto.yaml"), []byte(content), 0o644))
}

func TestLoader_DefaultsWithoutFile(t *testing.T) {
	settings, err := newLoader(t).Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, domain.DefaultSettings(), settings)
	require.True(t, settings.Enabled)
	require.Equal(t, 30*time.Second, settings.Timeout)
	require.Equal(t, "composer", settings.ComposerBin)
}

func TestLoader_FullFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
enabled: true
timeout: 45s
format:
  on_save: false
  on_type: true
  on_paste: true
watch:
  debounce: 150ms
search:
  exclude:
    - legacy
    - tmp
composer:
  bin: /usr/local/bin/composer2
log:
  json: true
`)

	settings, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	require.True(t, settings.Enabled)
	require.Equal(t, 45*time.Second, settings.Timeout)
	require.False(t, settings.FormatOnSave)
	require.True(t, settings.FormatOnType)
	require.True(t, settings.FormatOnPaste)
	require.Equal(t, 150*time.Millisecond, settings.Debounce)
	require.Equal(t, []string{"legacy", "tmp"}, settings.ExcludeDirs)
	require.Equal(t, "/usr/local/bin/composer2", settings.ComposerBin)
	require.True(t, settings.JSONLogs)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "timeout: 10s\n")

	settings, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, settings.Timeout)
	require.True(t, settings.Enabled)
	require.True(t, settings.FormatOnSave)
	require.Equal(t, domain.DefaultDebounce, settings.Debounce)
}

func TestLoader_NearestFileWins(t *testing.T) {
	outer := t.TempDir()
	inner := filepath.Join(outer, "packages", "api")
	writeConfig(t, outer, "timeout: 60s\n")
	writeConfig(t, inner, "timeout: 5s\n")

	settings, err := newLoader(t).Load(inner)
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, settings.Timeout)
}

func TestLoader_FoundFromNestedCwd(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "timeout: 12s\n")
	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	settings, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	require.Equal(t, 12*time.Second, settings.Timeout)
}

func TestLoader_InvalidTimeout(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "timeout: soon\n")

	_, err := newLoader(t).Load(dir)
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "timeout: [\n")

	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
}

func TestDiscoverBoundary_ConfigFileWins(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	boundary, err := newLoader(t).DiscoverBoundary(nested)
	require.NoError(t, err)
	require.Equal(t, root, boundary)
}

func TestDiscoverBoundary_GitFallback(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o750))
	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	boundary, err := newLoader(t).DiscoverBoundary(nested)
	require.NoError(t, err)
	require.Equal(t, root, boundary)
}

func TestDiscoverBoundary_CwdFallback(t *testing.T) {
	dir := t.TempDir()

	boundary, err := newLoader(t).DiscoverBoundary(dir)
	require.NoError(t, err)
	require.Equal(t, dir, boundary)
}
