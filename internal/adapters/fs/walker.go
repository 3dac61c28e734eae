// Package fs provides file system adapters: ignore-aware tree walking,
// glob matching, marker discovery, and content hashing.
package fs

import (
	"bufio"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Walker walks directory trees in deterministic depth-first pre-order,
// honoring nested .gitignore files.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// ignoreRule is one pattern from an ignore file, anchored at the directory
// holding that file.
type ignoreRule struct {
	base    string // directory the ignore file lives in
	pattern string
	dirOnly bool
}

// WalkDirs yields root and every non-ignored directory below it, pre-order.
// os.ReadDir returns entries sorted by name, which keeps the order stable
// across runs.
func (w *Walker) WalkDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		w.walk(root, nil, yield, nil)
	}
}

// WalkFiles yields every non-ignored file below root.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		w.walk(root, nil, nil, yield)
	}
}

// walk recurses from dir. Either of yieldDir/yieldFile may be nil.
// Returns false once a yield asked to stop.
func (w *Walker) walk(dir string, rules []ignoreRule, yieldDir, yieldFile func(string) bool) bool {
	if yieldDir != nil && !yieldDir(dir) {
		return false
	}

	rules = append(rules, loadIgnoreFile(dir)...)

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories are skipped, not fatal.
		return true
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() && (name == ".git" || name == ".jj") {
			continue
		}

		path := filepath.Join(dir, name)
		if ignored(rules, path, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			if !w.walk(path, rules, yieldDir, yieldFile) {
				return false
			}
		} else if yieldFile != nil && !yieldFile(path) {
			return false
		}
	}
	return true
}

// loadIgnoreFile reads dir/.gitignore into rules. Negation patterns are not
// supported and are skipped.
func loadIgnoreFile(dir string) []ignoreRule {
	f, err := os.Open(filepath.Join(dir, ".gitignore")) //nolint:gosec // Path is derived from the walked tree
	if err != nil {
		return nil
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var rules []ignoreRule
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		dirOnly := strings.HasSuffix(line, "/")
		line = strings.TrimSuffix(line, "/")
		line = strings.TrimPrefix(line, "/")
		rules = append(rules, ignoreRule{base: dir, pattern: line, dirOnly: dirOnly})
	}
	return rules
}

// ignored reports whether path matches any accumulated ignore rule.
func ignored(rules []ignoreRule, path string, isDir bool) bool {
	name := filepath.Base(path)
	for _, r := range rules {
		if r.dirOnly && !isDir {
			continue
		}
		if strings.Contains(r.pattern, "/") {
			rel, err := filepath.Rel(r.base, path)
			if err != nil {
				continue
			}
			if MatchGlob(r.pattern, filepath.ToSlash(rel)) {
				return true
			}
			continue
		}
		if ok, _ := filepath.Match(r.pattern, name); ok {
			return true
		}
	}
	return false
}
