// Package lifecycle implements the Lifecycle Manager of §4.8: createAsset,
// publishToWeb, and inscribeOnBitcoin, orchestrating the did, credential,
// asset, and inscription packages against one OriginalsConfig.
package lifecycle

import (
	"context"

	"github.com/onionoriginals/originals/config"
	"github.com/onionoriginals/originals/crypto"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
)

// Manager is the Lifecycle Manager. It holds only a transient reference to
// whichever Asset it is currently operating on, passed per-call rather than
// stored, so Asset <-> Lifecycle <-> Migration never forms a retained cycle
// (§9 "cyclic references").
type Manager struct {
	config config.OriginalsConfig
	dids   *did.Manager
}

// NewManager constructs a Lifecycle Manager bound to cfg and dids. dids owns
// the did:peer cache and default key type used by createAsset.
func NewManager(cfg config.OriginalsConfig, dids *did.Manager) *Manager {
	return &Manager{config: cfg, dids: dids}
}

// resolveSigningKey fetches the private key backing verificationMethodID
// from the configured KeyStore. Freshly generated keys (e.g. right after
// createAsset) should be signed with the key pair already in hand instead
// of round-tripping through here.
func (m *Manager) resolveSigningKey(ctx context.Context, verificationMethodID string) (string, error) {
	if m.config.KeyStore == nil {
		return "", errors.New(errors.ERR_INVALID_INPUT, "no KeyStore configured: cannot sign on behalf of %s", verificationMethodID)
	}
	return m.config.KeyStore.GetPrivateKeyMultibase(ctx, verificationMethodID)
}

func assertionMethodID(doc did.Document) (string, error) {
	if len(doc.AssertionMethod) == 0 {
		return "", errors.New(errors.ERR_INVALID_INPUT, "DID document %s has no assertionMethod", doc.ID)
	}
	return doc.AssertionMethod[0], nil
}

func (m *Manager) defaultKeyType() crypto.KeyType {
	if m.config.DefaultKeyType != "" {
		return m.config.DefaultKeyType
	}
	return crypto.KeyTypeEd25519
}
