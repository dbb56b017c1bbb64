// Package formatter orchestrates the format pipeline: project resolution,
// binary discovery, install negotiation, and the two-phase pint protocol.
package formatter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Formatter = (*Formatter)(nil)

// Formatter implements ports.Formatter.
type Formatter struct {
	resolver  ports.ProjectResolver
	locator   ports.BinaryLocator
	cache     ports.PathCache
	runner    ports.ToolRunner
	consenter ports.Consenter
	installer ports.Installer
	settings  *domain.Settings
	logger    ports.Logger
	tracer    ports.Tracer

	// group serializes concurrent requests for the same file. A second
	// trigger for a file already in flight shares the first run's result
	// instead of racing pint against itself.
	group singleflight.Group

	// declined remembers roots whose install prompt was refused, so one
	// session never nags twice for the same project.
	mu       sync.Mutex
	declined map[string]struct{}
}

// New creates a Formatter.
func New(
	resolver ports.ProjectResolver,
	locator ports.BinaryLocator,
	cache ports.PathCache,
	runner ports.ToolRunner,
	consenter ports.Consenter,
	installer ports.Installer,
	settings *domain.Settings,
	logger ports.Logger,
	tracer ports.Tracer,
) *Formatter {
	return &Formatter{
		resolver:  resolver,
		locator:   locator,
		cache:     cache,
		runner:    runner,
		consenter: consenter,
		installer: installer,
		settings:  settings,
		logger:    logger,
		tracer:    tracer,
		declined:  make(map[string]struct{}),
	}
}

// Format implements ports.Formatter.
func (f *Formatter) Format(ctx context.Context, req domain.FormatRequest) (*domain.FormatResult, error) {
	if !f.settings.Enabled {
		return nil, domain.ErrDisabled
	}

	absPath, err := filepath.Abs(req.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", req.Path)
	}

	if !strings.EqualFold(filepath.Ext(absPath), ".php") {
		return nil, zerr.With(domain.ErrNotPHPFile, "path", absPath)
	}

	result, err, _ := f.group.Do(absPath, func() (any, error) {
		return f.format(ctx, absPath, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.FormatResult), nil
}

func (f *Formatter) format(ctx context.Context, absPath string, req domain.FormatRequest) (*domain.FormatResult, error) {
	start := time.Now()

	ctx, span := f.tracer.Start(ctx, "format")
	defer span.End()
	span.SetAttribute("path", absPath)

	root, err := f.resolver.Resolve(absPath, req.Boundary)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, domain.ErrFormatFailed.Error())
	}
	span.SetAttribute("root", root)

	binary, err := f.binaryFor(ctx, root)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = f.settings.Timeout
	}

	// pint runs from the binary's own project root, which can sit deeper
	// than the resolved root when the vendor tree is nested.
	binRoot := domain.ProjectRootOf(binary)
	relPath, err := filepath.Rel(binRoot, absPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "file is outside its project root"), "path", absPath)
	}

	result := &domain.FormatResult{
		Path:   absPath,
		Root:   root,
		Binary: binary,
	}

	before, err := os.ReadFile(absPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", absPath)
	}

	needsFormat, err := f.check(ctx, binary, binRoot, relPath, timeout)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if !needsFormat {
		result.Content = before
		result.Duration = time.Since(start)
		f.logger.Info(relPath + " already formatted")
		return result, nil
	}

	if err := f.apply(ctx, binary, binRoot, relPath, timeout); err != nil {
		span.RecordError(err)
		return nil, err
	}
	result.Applied = true

	// Trust the disk, not pint's output: re-read the file to get what the
	// editor should show.
	after, err := os.ReadFile(absPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReadBackFailed.Error()), "path", absPath)
	}
	result.Content = after
	result.Changed = xxhash.Sum64(before) != xxhash.Sum64(after)
	result.Duration = time.Since(start)

	span.SetAttribute("changed", result.Changed)
	f.logger.Info(fmt.Sprintf("formatted %s in %s", relPath, result.Duration.Round(time.Millisecond)))

	return result, nil
}

// binaryFor returns the pint binary for root, consulting the cache first
// and negotiating an install when discovery comes up empty.
func (f *Formatter) binaryFor(ctx context.Context, root string) (string, error) {
	if binary, ok := f.cache.Get(root); ok {
		return binary, nil
	}

	binary, err := f.locator.Find(root)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFormatFailed.Error())
	}
	if binary != "" {
		f.cache.Set(root, binary)
		return binary, nil
	}

	binary, err = f.negotiateInstall(ctx, root)
	if err != nil {
		return "", err
	}
	f.cache.Set(root, binary)
	return binary, nil
}

func (f *Formatter) negotiateInstall(ctx context.Context, root string) (string, error) {
	f.mu.Lock()
	_, alreadyDeclined := f.declined[root]
	f.mu.Unlock()
	if alreadyDeclined {
		return "", zerr.With(domain.ErrInstallDeclined, "root", root)
	}

	prompt := fmt.Sprintf("%s is not installed in %s. Install it now?", domain.PintPackage, root)
	ok, err := f.consenter.Confirm(prompt)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFormatFailed.Error())
	}
	if !ok {
		f.mu.Lock()
		f.declined[root] = struct{}{}
		f.mu.Unlock()
		return "", zerr.With(domain.ErrInstallDeclined, "root", root)
	}

	ctx, span := f.tracer.Start(ctx, "format.install")
	defer span.End()

	if err := f.installer.Install(ctx, root); err != nil {
		span.RecordError(err)
		return "", err
	}

	// Re-locate instead of assuming the conventional path: composer
	// scripts can relocate the bin dir.
	binary, err := f.locator.Find(root)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFormatFailed.Error())
	}
	if binary == "" {
		return "", zerr.With(
			zerr.Wrap(domain.ErrInstallFailed, "install succeeded but binary is still missing"),
			"root", root)
	}
	return binary, nil
}

// check runs the non-mutating pass. It reports true when pint found
// violations that an apply pass would fix.
func (f *Formatter) check(ctx context.Context, binary, root, relPath string, timeout time.Duration) (bool, error) {
	ctx, span := f.tracer.Start(ctx, "format."+domain.PhaseChecking.String())
	defer span.End()

	res, err := f.runner.Run(ctx, ports.Invocation{
		Bin:     binary,
		Args:    []string{relPath, "--test"},
		Dir:     root,
		Timeout: timeout,
	})
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	span.SetAttribute("exit", res.ExitCode)

	switch {
	case res.ExitCode == 0:
		return false, nil
	case res.ExitCode == 1 && (len(res.Stdout) > 0 || len(res.Stderr) > 0):
		return true, nil
	default:
		err := zerr.With(
			zerr.With(zerr.Wrap(domain.ErrProcessFailed, "unexpected check result"),
				"exit_code", res.ExitCode),
			"stderr", strings.TrimSpace(string(res.Stderr)))
		span.RecordError(err)
		return false, err
	}
}

// apply runs the mutating pass.
func (f *Formatter) apply(ctx context.Context, binary, root, relPath string, timeout time.Duration) error {
	ctx, span := f.tracer.Start(ctx, "format."+domain.PhaseApplying.String())
	defer span.End()

	res, err := f.runner.Run(ctx, ports.Invocation{
		Bin:     binary,
		Args:    []string{relPath},
		Dir:     root,
		Timeout: timeout,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("exit", res.ExitCode)

	if res.ExitCode != 0 {
		err := zerr.With(
			zerr.With(zerr.Wrap(domain.ErrFormatFailed, "apply pass exited non-zero"),
				"exit_code", res.ExitCode),
			"stderr", strings.TrimSpace(string(res.Stderr)))
		span.RecordError(err)
		return err
	}
	return nil
}
