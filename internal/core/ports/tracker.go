package ports

// SessionTracker exposes the set of files modified during a session. The set
// is maintained by the calling assistant's tooling; this engine only reads
// it, and appends files it has checked itself.
//
//go:generate go run go.uber.org/mock/mockgen -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks
type SessionTracker interface {
	// ModifiedFiles returns absolute paths recorded for the session.
	// An unknown session yields an empty set, not an error.
	ModifiedFiles(sessionID string) ([]string, error)

	// RecordFile appends a file to the session's modified set.
	RecordFile(sessionID, path string) error
}
