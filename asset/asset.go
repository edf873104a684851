// Package asset implements the OriginalsAsset aggregate of §4.7: resources,
// DID, credentials, current layer, provenance, and deferred event emission.
package asset

import (
	"time"

	"github.com/onionoriginals/originals/credential"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
	"github.com/onionoriginals/originals/events"
	"github.com/onionoriginals/originals/resource"
)

// Asset is the aggregate of §3/§4.7. The Lifecycle Manager holds a
// reference to it for the duration of a transition but never outlives it
// (§3 ownership); the Version Manager and Provenance ledger are owned
// exclusively by this Asset (§5).
type Asset struct {
	versions    *resource.Manager
	resourceIDs []string // insertion order, for a stable resource listing

	Document    did.Document
	Credentials []credential.VC
	CurrentLayer did.Layer
	provenance  Provenance

	bus *events.Bus
}

// New constructs an asset from its initial resource set and DID document.
// Each resource becomes version 1 of its logical id.
func New(resources []resource.Resource, doc did.Document, creator string) (*Asset, error) {
	if len(resources) == 0 {
		return nil, errors.New(errors.ERR_INVALID_INPUT, "an asset must have at least one resource")
	}

	a := &Asset{
		versions:     resource.NewManager(),
		Document:     doc,
		CurrentLayer: did.LayerPeer,
		bus:          events.NewBus(),
	}

	for _, r := range resources {
		if _, err := a.versions.AddVersion(r.ID, r.Type, r.Hash, r.ContentType, r.Content, r.PreviousVersionHash, ""); err != nil {
			return nil, err
		}
		a.resourceIDs = append(a.resourceIDs, r.ID)
	}

	a.provenance = Provenance{Creator: creator, CreatedAt: time.Now().UTC()}

	return a, nil
}

// ID returns the DID id that currently identifies this asset.
func (a *Asset) ID() string { return a.Document.ID }

// OnEvent registers a handler for deferred event delivery.
func (a *Asset) OnEvent(h events.Handler) { a.bus.On(h) }

// GetProvenance returns a defensive copy of the provenance ledger.
func (a *Asset) GetProvenance() Provenance { return a.provenance.Copy() }

// Resources returns the current (latest) version of every logical resource,
// in the order resources were first added.
func (a *Asset) Resources() []resource.Resource {
	out := make([]resource.Resource, 0, len(a.resourceIDs))
	for _, id := range a.resourceIDs {
		if r, ok := a.versions.GetCurrentVersion(id); ok {
			out = append(out, r)
		}
	}
	return out
}

// VersionManager exposes the asset's resource version manager to callers
// that need full history access (e.g. §4.5's accessor operations).
func (a *Asset) VersionManager() *resource.Manager { return a.versions }

func isAllowedTransition(from, to did.Layer) bool {
	switch from {
	case did.LayerPeer:
		return to == did.LayerWebVH || to == did.LayerBtco
	case did.LayerWebVH:
		return to == did.LayerBtco
	default:
		return false
	}
}

// MigrationMeta carries the transition-specific provenance fields.
type MigrationMeta struct {
	TxID    string
	FeeRate *float64
	Domain  string
}

// Migrate advances the asset to toLayer (§4.7, §8 invariant 4). Only
// forward transitions (peer->webvh, peer->btco, webvh->btco) are permitted;
// any other target fails with InvalidTransition. The event
// "asset:migrated" is emitted after this call returns.
func (a *Asset) Migrate(toLayer did.Layer, doc did.Document, cred credential.VC, meta MigrationMeta) error {
	a.bus.Enter()
	defer a.bus.Exit()

	if !isAllowedTransition(a.CurrentLayer, toLayer) {
		return errors.New(errors.ERR_INVALID_TRANSITION, "cannot migrate asset from %s to %s", string(a.CurrentLayer), string(toLayer))
	}

	credID := ""
	if cred.Proof != nil {
		credID = cred.Proof.VerificationMethod + "@" + cred.IssuanceDate
	}

	from := a.CurrentLayer
	a.Document = doc
	a.CurrentLayer = toLayer
	a.Credentials = append(a.Credentials, cred)
	a.provenance.Migrations = append(a.provenance.Migrations, Migration{
		From:         string(from),
		To:           string(toLayer),
		Timestamp:    time.Now().UTC(),
		CredentialID: credID,
		TxID:         meta.TxID,
		FeeRate:      meta.FeeRate,
		Domain:       meta.Domain,
	})

	a.bus.Emit(events.Event{Name: "asset:migrated", Data: Migration{From: string(from), To: string(toLayer)}})
	a.bus.Emit(events.Event{Name: "credential:issued", Data: cred})

	return nil
}
