// Package tracker persists the per-session modified-file set.
package tracker

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

// FilesFileName is the per-session modified-file list.
const FilesFileName = "files.json"

var _ ports.SessionTracker = (*Tracker)(nil)

// Tracker stores each session's modified files as a JSON array under the
// session's state directory.
type Tracker struct {
	mu       sync.Mutex
	pathFunc func(sessionID string) string
}

// New creates a Tracker rooted at the default session state directory.
func New() *Tracker {
	return &Tracker{pathFunc: func(sessionID string) string {
		return filepath.Join(domain.SessionPath(sessionID), FilesFileName)
	}}
}

// NewAt creates a Tracker whose session files live under root. For tests.
func NewAt(root string) *Tracker {
	return &Tracker{pathFunc: func(sessionID string) string {
		return filepath.Join(root, sessionID, FilesFileName)
	}}
}

// ModifiedFiles returns the recorded files for a session. A session with no
// record yields an empty set.
func (t *Tracker) ModifiedFiles(sessionID string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load(sessionID)
}

// RecordFile appends a file to the session's set, deduplicating by absolute
// path.
func (t *Tracker) RecordFile(sessionID, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve tracked file"), "path", path)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	files, err := t.load(sessionID)
	if err != nil {
		return err
	}
	if slices.Contains(files, abs) {
		return nil
	}
	files = append(files, abs)

	target := t.pathFunc(sessionID)
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create session directory")
	}
	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode session file list")
	}
	if err := os.WriteFile(target, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write session file list"), "path", target)
	}
	return nil
}

func (t *Tracker) load(sessionID string) ([]string, error) {
	data, err := os.ReadFile(t.pathFunc(sessionID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read session file list"), "session", sessionID)
	}
	var files []string
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode session file list"), "session", sessionID)
	}
	return files, nil
}
