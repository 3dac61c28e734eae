package coord

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"time"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

// dialTimeout bounds the reachability probe; an absent coordinator must fail
// fast so the caller can fall back to lockfile scope.
const dialTimeout = 150 * time.Millisecond

var _ ports.Locker = (*Client)(nil)

// Client implements ports.Locker against a running coordinator. Each
// acquired slot keeps its own connection open for the lease's lifetime; the
// server releases the lease if the connection drops.
type Client struct {
	socketPath string
}

// Dial probes the coordinator and returns a client when it answers a ping.
func Dial(socketPath string) (*Client, error) {
	c := &Client{socketPath: socketPath}
	conn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close() //nolint:errcheck // Best effort close in defer

	if _, err := roundTrip(conn, Request{Op: OpPing}, dialTimeout); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) connect() (net.Conn, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, dialTimeout)
	if err != nil {
		return nil, zerr.Wrap(err, "coordinator unreachable")
	}
	return conn, nil
}

// roundTrip sends one frame and reads one response within the deadline.
// A zero deadline reads without one (blocking acquires).
func roundTrip(conn net.Conn, req Request, deadline time.Duration) (Response, error) {
	if deadline > 0 {
		_ = conn.SetDeadline(time.Now().Add(deadline))
		defer conn.SetDeadline(time.Time{}) //nolint:errcheck // Best effort deadline reset
	}

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return Response{}, zerr.Wrap(err, "failed to send coordinator request")
	}
	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return Response{}, zerr.Wrap(err, "failed to read coordinator response")
	}
	if resp.Err != "" {
		return resp, zerr.New(resp.Err)
	}
	return resp, nil
}

// Acquire blocks until the coordinator grants the slot or ctx is done.
func (c *Client) Acquire(ctx context.Context, plugin, hook string) (ports.SlotHandle, error) {
	conn, err := c.connect()
	if err != nil {
		return nil, err
	}

	// Cancel a blocked acquire by closing the connection; the server then
	// releases anything granted to it.
	acquireDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-acquireDone:
		}
	}()

	resp, err := roundTrip(conn, Request{Op: OpAcquire, Plugin: plugin, Hook: hook}, 0)
	close(acquireDone)
	if err != nil {
		_ = conn.Close()
		if ctx.Err() != nil {
			abortErr := zerr.With(zerr.Wrap(ctx.Err(), "slot acquisition aborted"), "plugin", plugin)
			return nil, zerr.With(abortErr, "hook", hook)
		}
		return nil, err
	}
	if !resp.OK {
		_ = conn.Close()
		return nil, domain.ErrSlotHeld
	}

	return &leaseHandle{conn: conn, plugin: plugin, hook: hook, lease: resp.Lease}, nil
}

// IsHeld asks the coordinator whether the slot is granted. Unreachable
// coordinator reads as not held; the caller's own acquire will sort it out.
func (c *Client) IsHeld(plugin, hook string) bool {
	conn, err := c.connect()
	if err != nil {
		return false
	}
	defer conn.Close() //nolint:errcheck // Best effort close in defer

	resp, err := roundTrip(conn, Request{Op: OpHeld, Plugin: plugin, Hook: hook}, dialTimeout)
	return err == nil && resp.Held
}

// Wait blocks server-side until the slot is free, up to timeout.
func (c *Client) Wait(ctx context.Context, plugin, hook string, timeout time.Duration) error {
	conn, err := c.connect()
	if err != nil {
		return err
	}
	defer conn.Close() //nolint:errcheck // Best effort close in defer

	// Give the server the full window plus slack before declaring the
	// connection dead.
	resp, err := roundTrip(conn, Request{
		Op:        OpWait,
		Plugin:    plugin,
		Hook:      hook,
		TimeoutMs: timeout.Milliseconds(),
	}, timeout+time.Second)
	if err != nil {
		return err
	}
	if !resp.OK {
		waitErr := zerr.With(zerr.Wrap(domain.ErrDependencyTimeout, "slot wait expired"), "plugin", plugin)
		return zerr.With(waitErr, "hook", hook)
	}
	return nil
}

// leaseHandle releases the slot over its dedicated connection.
type leaseHandle struct {
	conn   net.Conn
	plugin string
	hook   string
	lease  string
	once   sync.Once
}

// Release frees the slot. Idempotent; closing the connection also releases
// server-side, so a panic or crash cannot leak the lease.
func (h *leaseHandle) Release() {
	h.once.Do(func() {
		_, _ = roundTrip(h.conn, Request{Op: OpRelease, Plugin: h.plugin, Hook: h.hook, Lease: h.lease}, dialTimeout)
		_ = h.conn.Close()
	})
}
