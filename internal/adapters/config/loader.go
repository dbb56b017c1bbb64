// Package config provides the configuration loader for pinto.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers the nearest pinto.yaml upward from cwd and merges it over
// the defaults. Absence of a config file is the common case and yields the
// defaults unchanged.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	configPath, found, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	if !found {
		return settings, nil
	}

	var file pintoFile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "config", configPath)
	}

	if err := applyFile(settings, &file); err != nil {
		return nil, zerr.With(err, "config", configPath)
	}

	return settings, nil
}

// DiscoverBoundary returns the directory holding the nearest pinto.yaml.
// Without one, the nearest .git directory marks the boundary, and failing
// that, cwd itself.
func (l *Loader) DiscoverBoundary(cwd string) (string, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", cwd)
	}

	if configPath, found, err := l.findConfiguration(absCwd); err != nil {
		return "", err
	} else if found {
		return filepath.Dir(configPath), nil
	}

	currentDir := absCwd
	for {
		if info, statErr := os.Stat(filepath.Join(currentDir, ".git")); statErr == nil && info.IsDir() {
			return currentDir, nil
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return absCwd, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", cwd)
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, statErr := os.Stat(configPath); statErr == nil {
			return configPath, true, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", false, nil
}

func applyFile(settings *domain.Settings, file *pintoFile) error {
	if file.Enabled != nil {
		settings.Enabled = *file.Enabled
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid timeout"), "timeout", file.Timeout)
		}
		settings.Timeout = timeout
	}
	if file.Format.OnSave != nil {
		settings.FormatOnSave = *file.Format.OnSave
	}
	if file.Format.OnType != nil {
		settings.FormatOnType = *file.Format.OnType
	}
	if file.Format.OnPaste != nil {
		settings.FormatOnPaste = *file.Format.OnPaste
	}
	if file.Watch.Debounce != "" {
		debounce, err := time.ParseDuration(file.Watch.Debounce)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid debounce"), "debounce", file.Watch.Debounce)
		}
		settings.Debounce = debounce
	}
	if len(file.Search.Exclude) > 0 {
		settings.ExcludeDirs = append([]string(nil), file.Search.Exclude...)
	}
	if file.Composer.Bin != "" {
		settings.ComposerBin = file.Composer.Bin
	}
	if file.Log.JSON != nil {
		settings.JSONLogs = *file.Log.JSON
	}
	return nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
