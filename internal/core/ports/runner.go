package ports

import (
	"context"
	"time"
)

// Invocation describes a single external command run.
type Invocation struct {
	// Bin is the executable path or name.
	Bin string
	// Args are the command arguments.
	Args []string
	// Dir is the working directory.
	Dir string
	// Timeout bounds the run; the child is killed when it elapses.
	Timeout time.Duration
}

// ExecResult captures the observable outcome of an invocation. A non-zero
// exit status is data, not an error: pint signals "needs formatting" with
// exit 1.
type ExecResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	TimedOut bool
}

// ToolRunner executes external commands with bounded lifetimes.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ToolRunner interface {
	// Run executes the invocation and waits for it to finish. It returns
	// an error only when the command could not be started or was cut off;
	// exit status is reported through ExecResult.
	Run(ctx context.Context, inv Invocation) (*ExecResult, error)
}
