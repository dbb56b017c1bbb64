// Package shell runs external tools, the pint binary and composer, as
// subprocesses.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolRunner = (*Runner)(nil)

// waitDelay bounds how long Wait blocks on a child that ignores the kill
// signal after its context expired.
const waitDelay = 5 * time.Second

// Runner implements ports.ToolRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the invocation and captures its output. A non-zero exit is
// not an error here, callers interpret exit codes themselves. Run returns
// an error only when the process could not be started or was cut short by
// the timeout.
func (r *Runner) Run(ctx context.Context, inv ports.Invocation) (*ports.ExecResult, error) {
	timeout := inv.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, inv.Bin, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Info("running " + inv.Bin + " " + strings.Join(inv.Args, " "))

	err := cmd.Run()

	result := &ports.ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if runCtx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		result.ExitCode = -1
		return result, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrProcessTimeout, "process exceeded its time budget"),
				"bin", inv.Bin),
			"timeout", timeout.String())
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to run process"), "bin", inv.Bin)
	}

	result.ExitCode = 0
	return result, nil
}
