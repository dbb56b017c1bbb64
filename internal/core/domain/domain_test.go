package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pinto/internal/core/domain"
)

func TestPintRelPath(t *testing.T) {
	assert.Equal(t, filepath.Join("vendor", "bin", "pint"), domain.PintRelPath())
}

func TestProjectRootOf(t *testing.T) {
	binary := filepath.Join("/work", "app", "vendor", "bin", "pint")
	assert.Equal(t, filepath.Join("/work", "app"), domain.ProjectRootOf(binary))
}

func TestFormatPhaseString(t *testing.T) {
	assert.Equal(t, "checking", domain.PhaseChecking.String())
	assert.Equal(t, "applying", domain.PhaseApplying.String())
	assert.Equal(t, "done", domain.PhaseDone.String())
	assert.Equal(t, "failed", domain.PhaseFailed.String())
}

func TestSettingsSkipDir(t *testing.T) {
	s := domain.DefaultSettings()
	assert.True(t, s.SkipDir(".git"))
	assert.True(t, s.SkipDir("node_modules"))
	assert.False(t, s.SkipDir("src"))

	s.ExcludeDirs = []string{"legacy"}
	assert.True(t, s.SkipDir("legacy"))
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()
	assert.True(t, s.Enabled)
	assert.Equal(t, domain.DefaultTimeout, s.Timeout)
	assert.Equal(t, "composer", s.ComposerBin)
	assert.True(t, s.FormatOnSave)
	assert.False(t, s.FormatOnType)
}
