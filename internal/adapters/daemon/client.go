// Package daemon implements the background daemon for pinto. Server and
// client speak JSON-RPC 2.0 over a per-boundary Unix domain socket.
package daemon

import (
	"context"
	"io"
	"net"
	"path/filepath"
	"time"

	"golang.org/x/exp/jsonrpc2"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DaemonClient = (*Client)(nil)

// socketDialer dials the daemon's Unix socket for jsonrpc2.
type socketDialer struct {
	socketPath string
}

func (d *socketDialer) Dial(_ context.Context) (io.ReadWriteCloser, error) {
	return net.DialTimeout("unix", d.socketPath, time.Second)
}

// Client implements ports.DaemonClient.
type Client struct {
	conn *jsonrpc2.Connection
}

// Dial connects to the daemon serving the given workspace boundary.
func Dial(ctx context.Context, boundary string) (*Client, error) {
	socketPath := filepath.Join(boundary, domain.DefaultDaemonSocketPath())

	conn, err := jsonrpc2.Dial(ctx, &socketDialer{socketPath: socketPath}, &jsonrpc2.ConnectionOptions{
		Framer: NewlineFramer(),
	})
	if err != nil {
		return nil, zerr.Wrap(err, "daemon client creation failed")
	}

	return &Client{conn: conn}, nil
}

func (c *Client) call(ctx context.Context, method string, params, result any) error {
	return c.conn.Call(ctx, method, params).Await(ctx, result)
}

// Ping implements ports.DaemonClient.
func (c *Client) Ping(ctx context.Context) error {
	var result PingResult
	return c.call(ctx, MethodPing, struct{}{}, &result)
}

// Format implements ports.DaemonClient.
func (c *Client) Format(ctx context.Context, path string) (*ports.FormatReply, error) {
	var result FormatResult
	if err := c.call(ctx, MethodFormat, &FormatParams{Path: path}, &result); err != nil {
		return nil, err
	}
	return &ports.FormatReply{
		Content: result.Content,
		Changed: result.Changed,
		Root:    result.Root,
	}, nil
}

// ClearCache implements ports.DaemonClient.
func (c *Client) ClearCache(ctx context.Context) error {
	var result ClearCacheResult
	return c.call(ctx, MethodClearCache, struct{}{}, &result)
}

// Status implements ports.DaemonClient.
func (c *Client) Status(ctx context.Context) (*ports.DaemonStatus, error) {
	var result StatusResult
	if err := c.call(ctx, MethodStatus, struct{}{}, &result); err != nil {
		return nil, err
	}
	return &ports.DaemonStatus{
		Running:       result.Running,
		PID:           result.PID,
		Boundary:      result.Boundary,
		Uptime:        time.Duration(result.UptimeSeconds) * time.Second,
		LastActivity:  time.Unix(result.LastActivityUnix, 0),
		IdleRemaining: time.Duration(result.IdleRemainingSeconds) * time.Second,
		CachedRoots:   result.CachedRoots,
		FormatOnSave:  result.FormatOnSave,
		FormatOnType:  result.FormatOnType,
		FormatOnPaste: result.FormatOnPaste,
	}, nil
}

// Shutdown implements ports.DaemonClient.
func (c *Client) Shutdown(ctx context.Context) error {
	var result ShutdownResult
	return c.call(ctx, MethodShutdown, struct{}{}, &result)
}

// Close implements ports.DaemonClient.
func (c *Client) Close() error {
	return c.conn.Close()
}
