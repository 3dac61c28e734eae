// Package coord implements the slot coordinator: a small lock service over a
// Unix domain socket that elevates slot exclusion to machine-wide scope.
// Frames are newline-delimited JSON, one request and one response per frame.
package coord

// Operations understood by the coordinator.
const (
	OpPing    = "ping"
	OpAcquire = "acquire"
	OpRelease = "release"
	OpHeld    = "held"
	OpWait    = "wait"
	OpStatus  = "status"
)

// Request is one client frame.
type Request struct {
	Op        string `json:"op"`
	Plugin    string `json:"plugin,omitempty"`
	Hook      string `json:"hook,omitempty"`
	Lease     string `json:"lease,omitempty"`
	TimeoutMs int64  `json:"timeout_ms,omitempty"`
}

// Response is one server frame.
type Response struct {
	OK    bool   `json:"ok"`
	Held  bool   `json:"held,omitempty"`
	Lease string `json:"lease,omitempty"`
	Err   string `json:"err,omitempty"`

	// Status fields, populated for OpStatus.
	PID           int   `json:"pid,omitempty"`
	UptimeSeconds int64 `json:"uptime_seconds,omitempty"`
	LocksHeld     int   `json:"locks_held,omitempty"`
}
