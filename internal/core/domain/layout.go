package domain

import (
	"path/filepath"
	"time"
)

const (
	// PintoDirName is the name of the internal workspace directory.
	PintoDirName = ".pinto"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "pinto.yaml"

	// DaemonSocketFile is the name of the daemon Unix socket.
	DaemonSocketFile = "daemon.sock"

	// DaemonLogFile is the name of the daemon log file.
	DaemonLogFile = "daemon.log"

	// DaemonPIDFile is the name of the daemon PID file.
	DaemonPIDFile = "daemon.pid"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// SocketPerm is the permission for the daemon socket (rw-------).
	SocketPerm = 0o600
)

const (
	// DefaultTimeout bounds every external pint or composer invocation.
	DefaultTimeout = 30 * time.Second

	// DefaultDebounce is the window for coalescing vendor watch events.
	DefaultDebounce = 300 * time.Millisecond

	// DefaultDaemonIdleTimeout shuts the daemon down after inactivity.
	DefaultDaemonIdleTimeout = 30 * time.Minute
)

// DefaultDaemonSocketPath returns the daemon socket path relative to a
// workspace boundary.
func DefaultDaemonSocketPath() string {
	return filepath.Join(PintoDirName, DaemonSocketFile)
}

// DefaultDaemonLogPath returns the daemon log path relative to a
// workspace boundary.
func DefaultDaemonLogPath() string {
	return filepath.Join(PintoDirName, DaemonLogFile)
}

// DefaultDaemonPIDPath returns the daemon PID file path relative to a
// workspace boundary.
func DefaultDaemonPIDPath() string {
	return filepath.Join(PintoDirName, DaemonPIDFile)
}
