package ports

import (
	"context"

	"go.trai.ch/gate/internal/core/domain"
)

// ChangeCache decides whether a hook needs to re-run for a directory, based
// on content hashes of the files matching its ifChanged globs.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ChangeCache interface {
	// HasChanges reports whether the hook must run. Empty ifChanged always
	// reports true (the hook is not cache-eligible). Infrastructure errors
	// degrade to true: the hook runs rather than being wrongly skipped.
	HasChanges(ctx context.Context, key domain.CacheKey, ifChanged []string, command string) bool

	// RecordSuccess persists the current manifest for the key. Called only
	// after a successful run; failures must never update the cache.
	RecordSuccess(ctx context.Context, key domain.CacheKey, ifChanged []string, command string) error
}
