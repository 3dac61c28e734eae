package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/adapters/cache"
	"go.trai.ch/gate/internal/adapters/fs"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCache(t *testing.T) (*cache.Cache, string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	store, err := cache.NewStore(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	dir := t.TempDir()
	return cache.New(store, fs.NewHasher(fs.NewWalker()), logger), dir
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCache_NoGlobsAlwaysChanged(t *testing.T) {
	c, dir := newCache(t)
	key := domain.CacheKey{Plugin: "biome", Hook: "lint", Directory: dir}

	require.True(t, c.HasChanges(context.Background(), key, nil, "biome check"))
	require.NoError(t, c.RecordSuccess(context.Background(), key, nil, "biome check"))
	require.True(t, c.HasChanges(context.Background(), key, nil, "biome check"))
}

func TestCache_UnchangedAfterRecord(t *testing.T) {
	c, dir := newCache(t)
	writeSource(t, dir, "main.ts", "export {}\n")
	key := domain.CacheKey{Plugin: "biome", Hook: "lint", Directory: dir}
	globs := []string{"**/*.ts"}

	require.True(t, c.HasChanges(context.Background(), key, globs, "biome check"))
	require.NoError(t, c.RecordSuccess(context.Background(), key, globs, "biome check"))
	require.False(t, c.HasChanges(context.Background(), key, globs, "biome check"))
}

func TestCache_ContentEditInvalidates(t *testing.T) {
	c, dir := newCache(t)
	path := writeSource(t, dir, "main.ts", "export {}\n")
	key := domain.CacheKey{Plugin: "biome", Hook: "lint", Directory: dir}
	globs := []string{"**/*.ts"}

	require.NoError(t, c.RecordSuccess(context.Background(), key, globs, "biome check"))
	require.NoError(t, os.WriteFile(path, []byte("export const x = 1\n"), 0o644))

	require.True(t, c.HasChanges(context.Background(), key, globs, "biome check"))
}

func TestCache_NewFileInvalidates(t *testing.T) {
	c, dir := newCache(t)
	writeSource(t, dir, "main.ts", "export {}\n")
	key := domain.CacheKey{Plugin: "biome", Hook: "lint", Directory: dir}
	globs := []string{"**/*.ts"}

	require.NoError(t, c.RecordSuccess(context.Background(), key, globs, "biome check"))
	writeSource(t, dir, "extra.ts", "export {}\n")

	require.True(t, c.HasChanges(context.Background(), key, globs, "biome check"))
}

func TestCache_CommandEditInvalidates(t *testing.T) {
	c, dir := newCache(t)
	writeSource(t, dir, "main.ts", "export {}\n")
	key := domain.CacheKey{Plugin: "biome", Hook: "lint", Directory: dir}
	globs := []string{"**/*.ts"}

	require.NoError(t, c.RecordSuccess(context.Background(), key, globs, "biome check"))

	require.False(t, c.HasChanges(context.Background(), key, globs, "biome check"))
	require.True(t, c.HasChanges(context.Background(), key, globs, "biome check --fix"))
}

func TestCache_PerFileKeyTracksSingleFile(t *testing.T) {
	c, dir := newCache(t)
	target := writeSource(t, dir, "main.ts", "export {}\n")
	other := writeSource(t, dir, "other.ts", "export {}\n")
	key := domain.CacheKey{
		SessionID: "s1",
		FilePath:  target,
		Plugin:    "biome",
		Hook:      "lint",
		Directory: dir,
	}
	globs := []string{"**/*.ts"}

	require.NoError(t, c.RecordSuccess(context.Background(), key, globs, "biome check"))

	// A sibling edit must not invalidate the per-file entry.
	require.NoError(t, os.WriteFile(other, []byte("changed\n"), 0o644))
	require.False(t, c.HasChanges(context.Background(), key, globs, "biome check"))

	require.NoError(t, os.WriteFile(target, []byte("changed\n"), 0o644))
	require.True(t, c.HasChanges(context.Background(), key, globs, "biome check"))
}

func TestCache_KeysAreIsolated(t *testing.T) {
	c, dir := newCache(t)
	writeSource(t, dir, "main.ts", "export {}\n")
	lint := domain.CacheKey{Plugin: "biome", Hook: "lint", Directory: dir}
	format := domain.CacheKey{Plugin: "biome", Hook: "format", Directory: dir}
	globs := []string{"**/*.ts"}

	require.NoError(t, c.RecordSuccess(context.Background(), lint, globs, "biome lint"))

	require.False(t, c.HasChanges(context.Background(), lint, globs, "biome lint"))
	require.True(t, c.HasChanges(context.Background(), format, globs, "biome format"))
}
