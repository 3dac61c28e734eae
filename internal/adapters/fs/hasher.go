package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher provides content hashing for files and command strings.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// HashFile computes the XXHash of a file's content, rendered as fixed-width
// hex. Content hashes, not mtimes, so touch-only edits do not invalidate.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// HashString computes the XXHash of a string, used for resolved commands.
func (h *Hasher) HashString(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

// MatchingFiles returns every non-ignored file under dir whose path relative
// to dir matches at least one glob, sorted by the walk's stable order.
func (h *Hasher) MatchingFiles(dir string, globs []string) ([]string, error) {
	if len(globs) == 0 {
		return nil, nil
	}

	var files []string
	for path := range h.walker.WalkFiles(dir) {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		if MatchAny(globs, filepath.ToSlash(rel)) {
			files = append(files, path)
		}
	}
	return files, nil
}
