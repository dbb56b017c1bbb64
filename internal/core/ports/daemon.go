package ports

import (
	"context"
	"time"
)

// DaemonStatus represents the current state of the daemon.
type DaemonStatus struct {
	Running       bool
	PID           int
	Boundary      string
	Uptime        time.Duration
	LastActivity  time.Time
	IdleRemaining time.Duration
	CachedRoots   int

	// Trigger gates from the daemon's effective configuration, for editor
	// clients that own on-save/on-type/on-paste wiring.
	FormatOnSave  bool
	FormatOnType  bool
	FormatOnPaste bool
}

// FormatReply is the daemon's answer to a format request.
type FormatReply struct {
	// Content is the final on-disk file content.
	Content string
	// Changed reports whether the file was rewritten.
	Changed bool
	// Root is the project root that served the request.
	Root string
}

// DaemonClient defines the interface for talking to the daemon.
//
//go:generate mockgen -source=daemon.go -destination=mocks/mock_daemon.go -package=mocks
type DaemonClient interface {
	// Ping checks if the daemon is alive and resets the inactivity timer.
	Ping(ctx context.Context) error

	// Format asks the daemon to format the file at path.
	Format(ctx context.Context, path string) (*FormatReply, error)

	// ClearCache empties the daemon's path cache.
	ClearCache(ctx context.Context) error

	// Status returns the current daemon status.
	Status(ctx context.Context) (*DaemonStatus, error)

	// Shutdown requests a graceful daemon shutdown.
	Shutdown(ctx context.Context) error

	// Close releases client resources.
	Close() error
}

// DaemonConnector manages daemon lifecycle from the CLI perspective.
type DaemonConnector interface {
	// Connect returns a client to the boundary's daemon, spawning it if
	// necessary.
	Connect(ctx context.Context, boundary string) (DaemonClient, error)

	// IsRunning checks if the boundary's daemon is currently responsive.
	IsRunning(boundary string) bool

	// Spawn starts a new daemon process in the background.
	Spawn(ctx context.Context, boundary string) error
}
