// Package app implements the application layer for pinto.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/pinto/internal/adapters/daemon"
	"go.trai.ch/pinto/internal/adapters/watcher"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	formatter    ports.Formatter
	cache        ports.PathCache
	connector    ports.DaemonConnector
	watcher      ports.Watcher
	settings     *domain.Settings
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	formatter ports.Formatter,
	cache ports.PathCache,
	connector ports.DaemonConnector,
	fileWatcher ports.Watcher,
	settings *domain.Settings,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		formatter:    formatter,
		cache:        cache,
		connector:    connector,
		watcher:      fileWatcher,
		settings:     settings,
		logger:       log,
	}
}

// FormatOptions configuration for the Format method.
type FormatOptions struct {
	// Daemon routes requests through the background daemon instead of
	// running the pipeline in-process.
	Daemon bool
}

// Format runs the format pipeline for each of the given files.
func (a *App) Format(ctx context.Context, paths []string, opts FormatOptions) error {
	if len(paths) == 0 {
		return domain.ErrNoFilesSpecified
	}

	boundary, err := a.boundary()
	if err != nil {
		return err
	}

	if opts.Daemon {
		return a.formatViaDaemon(ctx, boundary, paths)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		g.Go(func() error {
			_, err := a.formatter.Format(ctx, domain.FormatRequest{
				Path:     path,
				Boundary: boundary,
				Timeout:  a.settings.Timeout,
			})
			if err != nil {
				return zerr.With(err, "path", path)
			}
			return nil
		})
	}

	return g.Wait()
}

func (a *App) formatViaDaemon(ctx context.Context, boundary string, paths []string) error {
	client, err := a.connector.Connect(ctx, boundary)
	if err != nil {
		return zerr.Wrap(err, "failed to reach daemon")
	}
	defer func() { _ = client.Close() }()

	for _, path := range paths {
		reply, err := client.Format(ctx, path)
		if err != nil {
			return zerr.With(err, "path", path)
		}
		if reply.Changed {
			a.logger.Info("formatted " + path)
		}
	}
	return nil
}

// Watch formats PHP files as they change under the workspace boundary and
// invalidates cached binary locations when vendor trees move.
func (a *App) Watch(ctx context.Context) error {
	boundary, err := a.boundary()
	if err != nil {
		return err
	}

	debounce := a.settings.Debounce
	if debounce <= 0 {
		debounce = domain.DefaultDebounce
	}

	debouncer := watcher.NewDebouncer(debounce, func(paths []string) {
		a.handleWatchBatch(ctx, boundary, paths)
	})

	if err := a.watcher.Start(ctx, boundary); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info("watching " + boundary)

	for event := range a.watcher.Events() {
		select {
		case <-ctx.Done():
			debouncer.Flush()
			return ctx.Err()
		default:
		}
		debouncer.Add(event.Path)
	}

	debouncer.Flush()
	return ctx.Err()
}

// handleWatchBatch dispatches one debounced batch of changed paths.
func (a *App) handleWatchBatch(ctx context.Context, boundary string, paths []string) {
	for _, path := range paths {
		if isVendorPath(path) {
			root := vendorRootOf(path)
			if filepath.Base(path) == domain.VendorDirName {
				// The vendor tree itself appeared or vanished; nested
				// projects under this root are stale too.
				a.cache.InvalidateBoundary(root)
			} else {
				a.cache.Invalidate(root)
			}
			a.logger.Info("vendor changed, invalidated " + root)
			continue
		}

		if !strings.EqualFold(filepath.Ext(path), ".php") {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			// Deleted between event and batch.
			continue
		}

		result, err := a.formatter.Format(ctx, domain.FormatRequest{
			Path:     path,
			Boundary: boundary,
			Timeout:  a.settings.Timeout,
		})
		if err != nil {
			a.logger.Error(err)
			continue
		}
		if result.Changed {
			a.logger.Info("formatted " + path)
		}
	}
}

// isVendorPath reports whether path has a vendor directory component.
func isVendorPath(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == domain.VendorDirName {
			return true
		}
	}
	return false
}

// vendorRootOf returns the project root owning the vendor tree that
// contains path.
func vendorRootOf(path string) string {
	slashed := filepath.ToSlash(path)
	idx := strings.Index(slashed, "/"+domain.VendorDirName+"/")
	if idx < 0 {
		if strings.HasSuffix(slashed, "/"+domain.VendorDirName) {
			return filepath.Dir(path)
		}
		return path
	}
	return filepath.FromSlash(slashed[:idx])
}

// ClearCache drops cached binary locations, both locally and in a running
// daemon.
func (a *App) ClearCache(ctx context.Context) error {
	dropped := a.cache.Len()
	a.cache.Clear()
	a.logger.Info(fmt.Sprintf("cleared %d cached binary paths", dropped))

	boundary, err := a.boundary()
	if err != nil {
		return err
	}

	if !a.connector.IsRunning(boundary) {
		return nil
	}

	client, err := a.connector.Connect(ctx, boundary)
	if err != nil {
		return zerr.Wrap(err, "failed to reach daemon")
	}
	defer func() { _ = client.Close() }()

	if err := client.ClearCache(ctx); err != nil {
		return zerr.Wrap(err, "daemon cache clear failed")
	}
	a.logger.Info("daemon cache cleared")
	return nil
}

// ServeDaemon runs the daemon server in the foreground until idle timeout
// or context cancellation.
func (a *App) ServeDaemon(ctx context.Context) error {
	boundary, err := a.boundary()
	if err != nil {
		return err
	}

	lifecycle := daemon.NewLifecycle(domain.DefaultDaemonIdleTimeout)
	server := daemon.NewServer(boundary, lifecycle, a.formatter, a.cache, a.settings, a.logger)
	return server.Serve(ctx)
}

// DaemonStatus reports the state of the boundary's daemon.
func (a *App) DaemonStatus(ctx context.Context) (*ports.DaemonStatus, error) {
	boundary, err := a.boundary()
	if err != nil {
		return nil, err
	}

	if !a.connector.IsRunning(boundary) {
		return &ports.DaemonStatus{Running: false, Boundary: boundary}, nil
	}

	client, err := a.connector.Connect(ctx, boundary)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to reach daemon")
	}
	defer func() { _ = client.Close() }()

	return client.Status(ctx)
}

// StopDaemon asks the boundary's daemon to shut down.
func (a *App) StopDaemon(ctx context.Context) error {
	boundary, err := a.boundary()
	if err != nil {
		return err
	}

	if !a.connector.IsRunning(boundary) {
		return zerr.With(domain.ErrDaemonNotRunning, "boundary", boundary)
	}

	client, err := a.connector.Connect(ctx, boundary)
	if err != nil {
		return zerr.Wrap(err, "failed to reach daemon")
	}
	defer func() { _ = client.Close() }()

	if err := client.Shutdown(ctx); err != nil {
		return zerr.Wrap(err, "daemon shutdown failed")
	}

	a.waitForDaemonExit(boundary)
	a.logger.Info("daemon stopped")
	return nil
}

// waitForDaemonExit polls briefly so "daemon stop" returns after the
// socket is actually gone.
func (a *App) waitForDaemonExit(boundary string) {
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if !a.connector.IsRunning(boundary) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func (a *App) boundary() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}
	boundary, err := a.configLoader.DiscoverBoundary(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to discover workspace boundary")
	}
	return boundary, nil
}
