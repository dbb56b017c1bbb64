package domain

import "go.trai.ch/zerr"

var (
	// ErrDisabled is returned when formatting is disabled by configuration.
	ErrDisabled = zerr.New("formatting is disabled")

	// ErrNotPHPFile is returned when a format request targets a non-PHP file.
	ErrNotPHPFile = zerr.New("not a php file")

	// ErrBinaryNotFound is returned when no pint binary exists under a
	// project root. It triggers install negotiation and is only surfaced
	// when negotiation cannot run.
	ErrBinaryNotFound = zerr.New("pint binary not found")

	// ErrInstallDeclined is returned when the user declines the install
	// prompt. The request fails without caching anything.
	ErrInstallDeclined = zerr.New("pint installation declined")

	// ErrInstallFailed is returned when the composer install command exits
	// non-zero, or the binary is still absent after a successful install.
	ErrInstallFailed = zerr.New("pint installation failed")

	// ErrProcessTimeout is returned when an external command exceeds the
	// configured timeout.
	ErrProcessTimeout = zerr.New("external command timed out")

	// ErrProcessFailed is returned when pint exits with a status that is
	// neither 0 nor the needs-formatting signal.
	ErrProcessFailed = zerr.New("pint execution failed")

	// ErrReadBackFailed is returned when the file cannot be re-read after a
	// mutating invocation, leaving success unconfirmed.
	ErrReadBackFailed = zerr.New("failed to read file back after formatting")

	// ErrFormatFailed wraps any downstream failure at the formatter boundary.
	ErrFormatFailed = zerr.New("format request failed")

	// ErrNoFilesSpecified is returned when the format command gets no paths.
	ErrNoFilesSpecified = zerr.New("no files specified")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrDaemonSpawnFailed is returned when the daemon process cannot start.
	ErrDaemonSpawnFailed = zerr.New("failed to spawn daemon")

	// ErrDaemonNotRunning is returned when no daemon answers on the socket.
	ErrDaemonNotRunning = zerr.New("daemon is not running")
)
