package daemon

import (
	"sync"
	"time"
)

// Lifecycle retires the daemon after a quiet period. Every RPC touches it;
// when no request arrives within the idle timeout the daemon shuts itself
// down rather than lingering under the boundary.
type Lifecycle struct {
	mu      sync.Mutex
	idle    *time.Timer
	started time.Time
	touched time.Time
	timeout time.Duration

	done     chan struct{}
	doneOnce sync.Once
}

// NewLifecycle starts the idle countdown with the given timeout.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	now := time.Now()
	l := &Lifecycle{
		started: now,
		touched: now,
		timeout: timeout,
		done:    make(chan struct{}),
	}
	l.idle = time.AfterFunc(timeout, l.retire)
	return l
}

// Touch restarts the idle countdown. Called on every request.
func (l *Lifecycle) Touch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touched = time.Now()
	l.idle.Reset(l.timeout)
}

// IdleRemaining returns how long until the daemon retires itself, clamped
// at zero.
func (l *Lifecycle) IdleRemaining() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	remaining := l.timeout - time.Since(l.touched)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Uptime returns how long the daemon has been running.
func (l *Lifecycle) Uptime() time.Duration {
	return time.Since(l.started)
}

// LastActivity returns when the daemon last served a request.
func (l *Lifecycle) LastActivity() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.touched
}

// Done returns a channel that closes once shutdown is triggered, either by
// the idle timeout or an explicit Shutdown.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}

func (l *Lifecycle) retire() {
	l.doneOnce.Do(func() {
		close(l.done)
	})
}

// Shutdown stops the idle timer and triggers shutdown. Safe to call more
// than once.
func (l *Lifecycle) Shutdown() {
	l.idle.Stop()
	l.retire()
}
