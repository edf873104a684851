package did

import (
	"context"
	"strings"
	"sync"

	"github.com/onionoriginals/originals/adapters"
	"github.com/onionoriginals/originals/crypto"
	"github.com/onionoriginals/originals/errors"
)

// Manager is the DID Manager of §4.4: a thin, stateful façade over the
// package-level create/migrate/resolve functions, adding the did:peer
// cache and default-key-type configuration a host application supplies.
type Manager struct {
	defaultKeyType crypto.KeyType
	ordinals       adapters.OrdinalsProvider
	webvhResolver  WebVHResolver

	mu        sync.RWMutex
	peerCache map[string]Document
}

// NewManager constructs a DID Manager.
func NewManager(defaultKeyType crypto.KeyType, ordinals adapters.OrdinalsProvider, webvhResolver WebVHResolver) *Manager {
	return &Manager{
		defaultKeyType: defaultKeyType,
		ordinals:       ordinals,
		webvhResolver:  webvhResolver,
		peerCache:      make(map[string]Document),
	}
}

// CreateDidPeer builds a peer DID and caches its document for later resolution.
func (m *Manager) CreateDidPeer(resources []ResourceHash) (Document, crypto.KeyPair, error) {
	doc, kp, err := CreateDidPeer(resources, m.defaultKeyType)
	if err != nil {
		return Document{}, crypto.KeyPair{}, err
	}

	m.mu.Lock()
	m.peerCache[doc.ID] = doc
	m.mu.Unlock()

	return doc, kp, nil
}

// CacheDocument stores doc under its own id, e.g. after a migration, so
// ResolveDid can serve did:peer lookups without a persistence adapter.
func (m *Manager) CacheDocument(doc Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.peerCache[doc.ID] = doc
}

// ResolveDid dispatches on DID method, consulting the peer cache for did:peer.
func (m *Manager) ResolveDid(ctx context.Context, d string) (ResolutionResult, error) {
	return ResolveDid(ctx, d, m.ordinals, m.webvhResolver, m.lookupPeer)
}

func (m *Manager) lookupPeer(d string) *Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if doc, ok := m.peerCache[d]; ok {
		return &doc
	}
	return nil
}

// ResolveVerificationMethod resolves a DID URL to its verification method,
// satisfying credential.VerificationMethodResolver.
func (m *Manager) ResolveVerificationMethod(ctx context.Context, verificationMethodID string) (VerificationMethod, error) {
	baseDID, fragment, ok := splitDIDURL(verificationMethodID)
	if !ok {
		return VerificationMethod{}, errors.New(errors.ERR_INVALID_DID_FORMAT, "not a DID URL: %s", verificationMethodID)
	}

	result, err := m.ResolveDid(ctx, baseDID)
	if err != nil {
		return VerificationMethod{}, err
	}
	if result.DIDDocument == nil {
		return VerificationMethod{}, errors.New(errors.ERR_NOT_FOUND, "could not resolve DID %s", baseDID)
	}

	for _, vm := range result.DIDDocument.VerificationMethod {
		if strings.HasSuffix(vm.ID, "#"+fragment) {
			return vm, nil
		}
	}

	return VerificationMethod{}, errors.New(errors.ERR_NOT_FOUND, "verification method %s not found on %s", verificationMethodID, baseDID)
}

func splitDIDURL(vmID string) (string, string, bool) {
	idx := strings.Index(vmID, "#")
	if idx < 0 {
		return "", "", false
	}
	return vmID[:idx], vmID[idx+1:], true
}
