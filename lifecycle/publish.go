package lifecycle

import (
	"context"

	"github.com/onionoriginals/originals/asset"
	"github.com/onionoriginals/originals/credential"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
)

// PublishToWeb migrates a from did:peer to did:webvh at domain, signing a
// ResourceMigrated credential with the asset's current assertion key
// (§4.8).
func (m *Manager) PublishToWeb(ctx context.Context, a *asset.Asset, domain string) error {
	if a.CurrentLayer != did.LayerPeer {
		return errors.New(errors.ERR_INVALID_TRANSITION, "publishToWeb requires currentLayer == did:peer, got %s", a.CurrentLayer)
	}

	vmID, err := assertionMethodID(a.Document)
	if err != nil {
		return err
	}
	privateKey, err := m.resolveSigningKey(ctx, vmID)
	if err != nil {
		return err
	}

	newDoc, err := did.MigrateToDidWebVH(a.Document, domain)
	if err != nil {
		return err
	}
	m.dids.CacheDocument(newDoc)

	subject := map[string]interface{}{
		"id":   newDoc.ID,
		"from": string(did.LayerPeer),
		"to":   string(did.LayerWebVH),
	}
	cred, err := credential.CreateResourceCredential(credential.KindResourceMigrated, subject, newDoc.ID)
	if err != nil {
		return err
	}

	// The migration credential is signed with the pre-migration key, the
	// only verification method the DID manager can still resolve at this
	// instant (the webvh log has not been published yet).
	signed, err := credential.SignCredential(ctx, cred, privateKey, vmID, m.dids, m.defaultKeyType())
	if err != nil {
		return err
	}

	return a.Migrate(did.LayerWebVH, newDoc, signed, asset.MigrationMeta{Domain: domain})
}
