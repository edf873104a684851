package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/onionoriginals/originals/adapters"
	"github.com/onionoriginals/originals/asset"
	"github.com/onionoriginals/originals/credential"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
)

// Checkpoint is the pre-migration snapshot of point 2: source DID document,
// credentials, current layer and provenance, enough to reinstate the
// asset's prior state on rollback. Storage references, ownership proofs and
// free-form metadata are not captured.
type Checkpoint struct {
	ID           string           `json:"id"`
	AssetID      string           `json:"assetId"`
	Document     did.Document     `json:"document"`
	Credentials  []credential.VC  `json:"credentials"`
	CurrentLayer did.Layer        `json:"currentLayer"`
	Provenance   asset.Provenance `json:"provenance"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// newID generates a fresh random identifier, prefixed for readability in
// storage keys and logs.
func newID(prefix string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.New(errors.ERR_UNKNOWN, "generate %s id", prefix, err)
	}
	return prefix + "-" + id.String(), nil
}

// newCheckpoint snapshots a's current state.
func newCheckpoint(a *asset.Asset) (Checkpoint, error) {
	id, err := newID("ckpt")
	if err != nil {
		return Checkpoint{}, err
	}
	return Checkpoint{
		ID:           id,
		AssetID:      a.ID(),
		Document:     a.Document,
		Credentials:  append([]credential.VC{}, a.Credentials...),
		CurrentLayer: a.CurrentLayer,
		Provenance:   a.GetProvenance(),
		CreatedAt:    nowUTC(),
	}, nil
}

func checkpointKey(id string) string {
	return fmt.Sprintf("checkpoints/%s.json", id)
}

// saveCheckpoint persists cp as canonical JSON via store, matching the
// §6 checkpoint persistence layout convention.
func saveCheckpoint(ctx context.Context, store adapters.StorageAdapter, cp Checkpoint) error {
	body, err := json.Marshal(cp)
	if err != nil {
		return errors.New(errors.ERR_INVALID_INPUT, "marshal checkpoint %s", cp.ID, err)
	}
	if err := store.Put(ctx, checkpointKey(cp.ID), body); err != nil {
		return errors.New(errors.ERR_UNKNOWN, "persist checkpoint %s", cp.ID, err)
	}
	return nil
}

// loadCheckpoint retrieves a previously saved checkpoint.
func loadCheckpoint(ctx context.Context, store adapters.StorageAdapter, id string) (Checkpoint, error) {
	body, ok, err := store.Get(ctx, checkpointKey(id))
	if err != nil {
		return Checkpoint{}, errors.New(errors.ERR_UNKNOWN, "load checkpoint %s", id, err)
	}
	if !ok {
		return Checkpoint{}, errors.New(errors.ERR_NOT_FOUND, "no checkpoint %s", id)
	}
	var cp Checkpoint
	if err := json.Unmarshal(body, &cp); err != nil {
		return Checkpoint{}, errors.New(errors.ERR_INVALID_INPUT, "unmarshal checkpoint %s", id, err)
	}
	return cp, nil
}

// deleteCheckpoint removes a checkpoint; Execute calls it as soon as a
// completed migration's audit record is written. A failed deletion is
// discarded: it is neither returned to the caller nor logged.
func deleteCheckpoint(ctx context.Context, store adapters.StorageAdapter, id string) {
	_ = store.Delete(ctx, checkpointKey(id))
}

// restore reinstates a's state from cp, used by rollback.
func restore(a *asset.Asset, cp Checkpoint) {
	a.Document = cp.Document
	a.Credentials = append([]credential.VC{}, cp.Credentials...)
	a.CurrentLayer = cp.CurrentLayer
}
