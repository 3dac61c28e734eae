package cache

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/gate/internal/adapters/fs"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ChangeCache = (*Cache)(nil)

// hashParallelism bounds concurrent file hashing per manifest.
const hashParallelism = 8

// Cache implements ports.ChangeCache: content-hash manifests compared against
// the store, with the resolved command hashed alongside so command edits
// force a re-run even when no file changed.
type Cache struct {
	store  *Store
	hasher *fs.Hasher
	logger ports.Logger
}

// New creates a new Cache.
func New(store *Store, hasher *fs.Hasher, logger ports.Logger) *Cache {
	return &Cache{store: store, hasher: hasher, logger: logger}
}

// HasChanges reports whether the hook must run for the key. Any
// infrastructure error degrades to "changed"; a hook is re-run rather than
// wrongly skipped.
func (c *Cache) HasChanges(ctx context.Context, key domain.CacheKey, ifChanged []string, command string) bool {
	if len(ifChanged) == 0 {
		return true
	}

	entry, err := c.store.Get(key)
	if err != nil || entry == nil {
		return true
	}

	if entry.CommandHash != c.hasher.HashString(command) {
		return true
	}

	manifest, err := c.buildManifest(ctx, key, ifChanged)
	if err != nil {
		c.logger.Warn("cache manifest computation failed, assuming changed: " + err.Error())
		return true
	}

	if len(manifest) != len(entry.Manifest) {
		return true
	}
	for path, hash := range manifest {
		if entry.Manifest[path] != hash {
			return true
		}
	}
	return false
}

// RecordSuccess persists the current manifest for the key. The orchestrator
// calls this only after the supervisor reports success.
func (c *Cache) RecordSuccess(ctx context.Context, key domain.CacheKey, ifChanged []string, command string) error {
	if len(ifChanged) == 0 {
		return nil
	}

	manifest, err := c.buildManifest(ctx, key, ifChanged)
	if err != nil {
		return err
	}

	return c.store.Put(key, domain.CacheEntry{
		Manifest:    manifest,
		CommandHash: c.hasher.HashString(command),
		UpdatedAt:   time.Now(),
	})
}

// buildManifest hashes the current matching file set. For the per-file
// variant the set is the single tracked file; otherwise it is every file
// under the directory matching the globs.
func (c *Cache) buildManifest(ctx context.Context, key domain.CacheKey, ifChanged []string) (map[string]string, error) {
	var files []string
	if key.FilePath != "" {
		files = []string{key.FilePath}
	} else {
		var err error
		files, err = c.hasher.MatchingFiles(key.Directory, ifChanged)
		if err != nil {
			return nil, err
		}
	}

	manifest := make(map[string]string, len(files))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(hashParallelism)
	for _, path := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			hash, err := c.hasher.HashFile(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to hash tracked file"), "path", path)
			}
			mu.Lock()
			manifest[path] = hash
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return manifest, nil
}
