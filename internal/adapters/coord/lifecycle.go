package coord

import (
	"sync"
	"time"
)

// Lifecycle manages the coordinator's inactivity timeout. Every request
// resets the timer; when it fires the server drains and exits, so an idle
// coordinator does not outlive the sessions it serves.
type Lifecycle struct {
	mu           sync.Mutex
	timer        *time.Timer
	startTime    time.Time
	timeout      time.Duration
	shutdownChan chan struct{}
	shutdownOnce sync.Once
}

// NewLifecycle creates a lifecycle manager with the given idle timeout.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	l := &Lifecycle{
		startTime:    time.Now(),
		timeout:      timeout,
		shutdownChan: make(chan struct{}),
	}
	l.timer = time.AfterFunc(timeout, l.triggerShutdown)
	return l
}

// Touch resets the inactivity timer. Called on every request.
func (l *Lifecycle) Touch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timer.Reset(l.timeout)
}

// Uptime returns how long the coordinator has been running.
func (l *Lifecycle) Uptime() time.Duration {
	return time.Since(l.startTime)
}

// ShutdownChan returns a channel that closes when shutdown is triggered.
func (l *Lifecycle) ShutdownChan() <-chan struct{} {
	return l.shutdownChan
}

// Shutdown stops the timer and triggers shutdown. Idempotent.
func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	l.timer.Stop()
	l.mu.Unlock()
	l.triggerShutdown()
}

func (l *Lifecycle) triggerShutdown() {
	l.shutdownOnce.Do(func() {
		close(l.shutdownChan)
	})
}
