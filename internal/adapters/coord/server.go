package coord

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

// acquireGraceTimeout bounds a single blocking acquire on the server side so
// a stuck client cannot pin a connection goroutine forever.
const acquireGraceTimeout = 10 * time.Minute

// Server is the coordinator: it owns the lock table and serves the JSON
// frame protocol on a Unix socket. Leases are tied to their connection and
// released when the client goes away, so a crashed invocation cannot leak a
// slot.
type Server struct {
	socketPath string
	pidPath    string
	lifecycle  *Lifecycle
	table      *lockTable
	logger     ports.Logger
	listener   net.Listener
}

// NewServer creates a coordinator serving the standard socket path.
func NewServer(lifecycle *Lifecycle, logger ports.Logger) *Server {
	return &Server{
		socketPath: domain.CoordinatorSocketPath(),
		pidPath:    domain.CoordinatorPIDPath(),
		lifecycle:  lifecycle,
		table:      newLockTable(),
		logger:     logger,
	}
}

// NewServerAt creates a coordinator on an explicit socket path. Used in tests.
func NewServerAt(socketPath string, lifecycle *Lifecycle, logger ports.Logger) *Server {
	return &Server{
		socketPath: socketPath,
		pidPath:    socketPath + ".pid",
		lifecycle:  lifecycle,
		table:      newLockTable(),
		logger:     logger,
	}
}

// Serve listens until ctx is done or the idle lifecycle fires.
func (s *Server) Serve(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.socketPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create coordinator directory")
	}
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to remove stale socket")
	}

	lis, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return zerr.Wrap(err, "failed to listen on coordinator socket")
	}
	s.listener = lis

	if err := os.WriteFile(s.pidPath, []byte(strconv.Itoa(os.Getpid())), domain.PrivateFilePerm); err != nil {
		_ = lis.Close()
		return zerr.Wrap(err, "failed to write coordinator pid file")
	}
	defer s.cleanup()

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-ctx.Done():
		case <-s.lifecycle.ShutdownChan():
		}
		_ = lis.Close()
	}()

	s.logger.Info("coordinator listening on " + s.socketPath)
	for {
		conn, err := lis.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.lifecycle.ShutdownChan():
				return nil
			default:
				return zerr.Wrap(err, "coordinator accept failed")
			}
		}
		go s.handleConn(connCtx, conn)
	}
}

func (s *Server) cleanup() {
	_ = os.Remove(s.socketPath)
	_ = os.Remove(s.pidPath)
}

// connLease tracks one lease granted over a connection.
type connLease struct {
	plugin, hook, lease string
}

// handleConn serves one client until it disconnects, then drops any leases
// it still holds.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close() //nolint:errcheck // Best effort close in defer

	var leases []connLease
	defer func() {
		for _, l := range leases {
			if s.table.release(l.plugin, l.hook, l.lease) {
				s.logger.Warn("released orphaned slot " + slotKey(l.plugin, l.hook))
			}
		}
	}()

	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)
	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			return
		}
		s.lifecycle.Touch()

		resp := s.handle(ctx, req, &leases)
		if err := enc.Encode(resp); err != nil {
			return
		}
	}
}

func (s *Server) handle(ctx context.Context, req Request, leases *[]connLease) Response {
	switch req.Op {
	case OpPing:
		return Response{OK: true}

	case OpAcquire:
		acquireCtx, cancel := context.WithTimeout(ctx, acquireGraceTimeout)
		lease, err := s.table.acquire(acquireCtx, req.Plugin, req.Hook)
		cancel()
		if err != nil {
			return Response{Err: "acquire aborted: " + err.Error()}
		}
		*leases = append(*leases, connLease{plugin: req.Plugin, hook: req.Hook, lease: lease})
		return Response{OK: true, Lease: lease}

	case OpRelease:
		ok := s.table.release(req.Plugin, req.Hook, req.Lease)
		for i, l := range *leases {
			if l.lease == req.Lease {
				*leases = append((*leases)[:i], (*leases)[i+1:]...)
				break
			}
		}
		return Response{OK: ok}

	case OpHeld:
		return Response{OK: true, Held: s.table.isHeld(req.Plugin, req.Hook)}

	case OpWait:
		released := s.table.wait(ctx, req.Plugin, req.Hook, time.Duration(req.TimeoutMs)*time.Millisecond)
		return Response{OK: released}

	case OpStatus:
		return Response{
			OK:            true,
			PID:           os.Getpid(),
			UptimeSeconds: int64(s.lifecycle.Uptime().Seconds()),
			LocksHeld:     s.table.heldCount(),
		}

	default:
		return Response{Err: "unknown op: " + req.Op}
	}
}
