package migration

import (
	"context"
	"time"

	"github.com/onionoriginals/originals/asset"
	"github.com/onionoriginals/originals/errors"
)

// nowUTC is the one time.Now() call site in this package, kept separate so
// every audit timestamp goes through the same path.
func nowUTC() time.Time { return time.Now().UTC() }

// rollback recovers a's state from the checkpoint identified by
// checkpointID. Per the concurrency model's cancellation policy, rollback
// is attempted exactly once; a failure here is what drives the caller into
// quarantined rather than rolled_back.
func (mgr *Manager) rollback(ctx context.Context, a *asset.Asset, checkpointID string) error {
	cp, err := loadCheckpoint(ctx, mgr.config.StorageAdapter, checkpointID)
	if err != nil {
		return errors.New(errors.ERR_ROLLBACK_ERROR, "rollback: could not load checkpoint %s", checkpointID, err)
	}

	restore(a, cp)

	return nil
}
