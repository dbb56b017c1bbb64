package shell

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Installer = (*ComposerInstaller)(nil)

// installTimeout is deliberately generous, composer resolves and downloads
// packages over the network.
const installTimeout = 5 * 60 * time.Second

// ComposerInstaller installs laravel/pint as a dev dependency via composer.
type ComposerInstaller struct {
	runner      ports.ToolRunner
	logger      ports.Logger
	composerBin string
}

// NewComposerInstaller creates a ComposerInstaller invoking composerBin,
// typically just "composer" resolved from PATH.
func NewComposerInstaller(runner ports.ToolRunner, logger ports.Logger, composerBin string) *ComposerInstaller {
	if composerBin == "" {
		composerBin = "composer"
	}
	return &ComposerInstaller{runner: runner, logger: logger, composerBin: composerBin}
}

// Install runs `composer require laravel/pint --dev` inside root. The
// command's own output is surfaced on failure so the user sees composer's
// diagnostics rather than a bare exit code.
func (i *ComposerInstaller) Install(ctx context.Context, root string) error {
	i.logger.Info("installing " + domain.PintPackage + " in " + root)

	result, err := i.runner.Run(ctx, ports.Invocation{
		Bin:     i.composerBin,
		Args:    []string{"require", domain.PintPackage, "--dev"},
		Dir:     root,
		Timeout: installTimeout,
	})
	if err != nil {
		return zerr.Wrap(err, "composer invocation failed")
	}

	if result.ExitCode != 0 {
		detail := strings.TrimSpace(string(result.Stderr))
		if detail == "" {
			detail = strings.TrimSpace(string(result.Stdout))
		}
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrInstallFailed, "composer require exited non-zero"),
				"exit_code", result.ExitCode),
			"output", detail)
	}

	i.logger.Info(domain.PintPackage + " installed")
	return nil
}
