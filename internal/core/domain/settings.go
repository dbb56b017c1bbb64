package domain

import "time"

// Settings is the effective pinto configuration after defaults are applied.
type Settings struct {
	// Enabled gates whether formatting runs at all.
	Enabled bool

	// Timeout bounds every external pint or composer invocation.
	Timeout time.Duration

	// FormatOnSave, FormatOnType and FormatOnPaste gate which host trigger
	// events invoke formatting. The core never consults them; the daemon
	// reports them to clients that own trigger wiring.
	FormatOnSave  bool
	FormatOnType  bool
	FormatOnPaste bool

	// Debounce is the window for coalescing vendor watch events.
	Debounce time.Duration

	// ExcludeDirs are additional directory names pruned during binary
	// discovery, on top of the built-in skip set.
	ExcludeDirs []string

	// ComposerBin is the composer executable used for installation.
	ComposerBin string

	// JSONLogs switches log output to JSON, used by the daemon log.
	JSONLogs bool
}

// DefaultSettings returns the configuration used when no pinto.yaml exists.
func DefaultSettings() *Settings {
	return &Settings{
		Enabled:      true,
		Timeout:      DefaultTimeout,
		FormatOnSave: true,
		Debounce:     DefaultDebounce,
		ComposerBin:  "composer",
	}
}

// SkipDir reports whether the locator should prune a directory name,
// combining the built-in skip set with configured extras.
func (s *Settings) SkipDir(name string) bool {
	if SkipDirNames[name] {
		return true
	}
	for _, d := range s.ExcludeDirs {
		if d == name {
			return true
		}
	}
	return false
}
