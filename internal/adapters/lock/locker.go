package lock

import (
	"go.trai.ch/gate/internal/adapters/coord"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
)

// NewLocker selects the strongest reachable backend: the coordinator when
// its socket answers a ping, otherwise lock files. The fallback weakens slot
// exclusion to staleness-window scope, so it warns instead of staying silent.
func NewLocker(logger ports.Logger) ports.Locker {
	client, err := coord.Dial(domain.CoordinatorSocketPath())
	if err == nil {
		return client
	}
	logger.Warn("coordinator unreachable, slot locking degrades to lockfile scope")
	return NewFileLocker(domain.LocksPath())
}
