package domain

import (
	"strings"
	"time"
)

// CacheKey identifies one change-detection manifest. SessionID and FilePath
// are set only for the per-file variant.
type CacheKey struct {
	SessionID string
	FilePath  string
	Plugin    string
	Hook      string
	Directory string
}

// String renders the key in its stored form. NUL separators keep path and
// name segments unambiguous.
func (k CacheKey) String() string {
	sep := "\x00"
	if k.SessionID != "" || k.FilePath != "" {
		return strings.Join([]string{k.SessionID, k.FilePath, k.Plugin, k.Hook, k.Directory}, sep)
	}
	return strings.Join([]string{k.Plugin, k.Hook, k.Directory}, sep)
}

// CacheEntry is a recorded successful run: the content-hash manifest of every
// matched file plus the hash of the command that ran.
type CacheEntry struct {
	Manifest    map[string]string `json:"manifest"`
	CommandHash string            `json:"command_hash"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
