package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/jsonrpc2"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// Server answers JSON-RPC requests on the boundary's Unix socket.
type Server struct {
	boundary  string
	lifecycle *Lifecycle
	formatter ports.Formatter
	cache     ports.PathCache
	settings  *domain.Settings
	logger    ports.Logger

	mu       sync.Mutex
	listener net.Listener
	conns    map[*jsonrpc2.Connection]struct{}
}

// NewServer creates a daemon server for the given workspace boundary.
func NewServer(
	boundary string,
	lifecycle *Lifecycle,
	formatter ports.Formatter,
	cache ports.PathCache,
	settings *domain.Settings,
	logger ports.Logger,
) *Server {
	return &Server{
		boundary:  boundary,
		lifecycle: lifecycle,
		formatter: formatter,
		cache:     cache,
		settings:  settings,
		logger:    logger,
		conns:     make(map[*jsonrpc2.Connection]struct{}),
	}
}

// connDialer hands an already-accepted connection to jsonrpc2.
type connDialer struct {
	conn net.Conn
}

func (d *connDialer) Dial(_ context.Context) (io.ReadWriteCloser, error) {
	return d.conn, nil
}

// Serve binds the socket and blocks until shutdown is triggered, the
// context is canceled, or the listener fails.
func (s *Server) Serve(ctx context.Context) error {
	socketPath := filepath.Join(s.boundary, domain.DefaultDaemonSocketPath())

	if err := os.MkdirAll(filepath.Dir(socketPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create daemon directory")
	}

	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to remove stale socket")
	}

	lis, err := net.Listen("unix", socketPath)
	if err != nil {
		return zerr.Wrap(err, "failed to listen on UDS")
	}
	s.mu.Lock()
	s.listener = lis
	s.mu.Unlock()

	if err := os.Chmod(socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return zerr.Wrap(err, "failed to set socket permissions")
	}

	if err := s.writePIDFile(); err != nil {
		_ = lis.Close()
		return err
	}

	defer s.cleanup()

	s.logger.Info("daemon serving on " + socketPath)

	acceptErr := make(chan error, 1)
	go s.acceptLoop(ctx, lis, acceptErr)

	select {
	case <-ctx.Done():
		s.stop(lis)
		return ctx.Err()
	case <-s.lifecycle.Done():
		s.logger.Info("daemon shutting down")
		s.stop(lis)
		return nil
	case err := <-acceptErr:
		return err
	}
}

func (s *Server) acceptLoop(ctx context.Context, lis net.Listener, acceptErr chan<- error) {
	for {
		conn, err := lis.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			acceptErr <- zerr.Wrap(err, "accept failed")
			return
		}

		rpcConn, dialErr := jsonrpc2.Dial(ctx, &connDialer{conn: conn}, &jsonrpc2.ConnectionOptions{
			Handler: s,
			Framer:  NewlineFramer(),
		})
		if dialErr != nil {
			s.logger.Error(zerr.Wrap(dialErr, "failed to serve connection"))
			_ = conn.Close()
			continue
		}

		s.mu.Lock()
		s.conns[rpcConn] = struct{}{}
		s.mu.Unlock()

		go func() {
			_ = rpcConn.Wait()
			s.mu.Lock()
			delete(s.conns, rpcConn)
			s.mu.Unlock()
		}()
	}
}

func (s *Server) stop(lis net.Listener) {
	_ = lis.Close()
	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()
}

func (s *Server) cleanup() {
	_ = os.Remove(filepath.Join(s.boundary, domain.DefaultDaemonSocketPath()))
	_ = os.Remove(filepath.Join(s.boundary, domain.DefaultDaemonPIDPath()))
}

func (s *Server) writePIDFile() error {
	pidPath := filepath.Join(s.boundary, domain.DefaultDaemonPIDPath())
	if err := os.WriteFile(pidPath, fmt.Appendf(nil, "%d", os.Getpid()), domain.PrivateFilePerm); err != nil {
		return zerr.Wrap(err, "failed to write pid file")
	}
	return nil
}

// Handle dispatches incoming JSON-RPC requests.
func (s *Server) Handle(ctx context.Context, req *jsonrpc2.Request) (any, error) {
	switch req.Method {
	case MethodPing:
		return s.handlePing(), nil
	case MethodFormat:
		return s.handleFormat(ctx, req)
	case MethodClearCache:
		return s.handleClearCache(), nil
	case MethodStatus:
		return s.handleStatus(), nil
	case MethodShutdown:
		return s.handleShutdown(), nil
	default:
		return nil, jsonrpc2.ErrNotHandled
	}
}

func (s *Server) handlePing() *PingResult {
	s.lifecycle.Touch()
	return &PingResult{
		IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
	}
}

func (s *Server) handleFormat(ctx context.Context, req *jsonrpc2.Request) (*FormatResult, error) {
	s.lifecycle.Touch()

	var params FormatParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, jsonrpc2.ErrParse
	}

	result, err := s.formatter.Format(ctx, domain.FormatRequest{
		Path:     params.Path,
		Boundary: s.boundary,
		Timeout:  s.settings.Timeout,
	})
	if err != nil {
		s.logger.Error(err)
		return nil, rpcError(err)
	}

	return &FormatResult{
		Content: string(result.Content),
		Changed: result.Changed,
		Root:    result.Root,
	}, nil
}

func (s *Server) handleClearCache() *ClearCacheResult {
	s.lifecycle.Touch()
	dropped := s.cache.Len()
	s.cache.Clear()
	s.logger.Info(fmt.Sprintf("cleared %d cached binary paths", dropped))
	return &ClearCacheResult{Dropped: dropped}
}

func (s *Server) handleStatus() *StatusResult {
	s.lifecycle.Touch()
	return &StatusResult{
		Running:              true,
		PID:                  os.Getpid(),
		Boundary:             s.boundary,
		UptimeSeconds:        int64(s.lifecycle.Uptime().Seconds()),
		LastActivityUnix:     s.lifecycle.LastActivity().Unix(),
		IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
		CachedRoots:          s.cache.Len(),
		FormatOnSave:         s.settings.FormatOnSave,
		FormatOnType:         s.settings.FormatOnType,
		FormatOnPaste:        s.settings.FormatOnPaste,
	}
}

func (s *Server) handleShutdown() *ShutdownResult {
	// Shut down after the response is written.
	go s.lifecycle.Shutdown()
	return &ShutdownResult{Success: true}
}

// rpcError maps domain errors onto the daemon's wire error codes.
func rpcError(err error) error {
	switch {
	case errors.Is(err, domain.ErrProcessTimeout):
		return FormatTimeoutError(err.Error())
	case errors.Is(err, domain.ErrInstallDeclined):
		return InstallDeclinedError(err.Error())
	case errors.Is(err, domain.ErrInstallFailed):
		return InstallFailedError(err.Error())
	default:
		return FormatFailedError(err.Error())
	}
}
