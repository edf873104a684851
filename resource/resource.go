// Package resource implements the immutable, hash-chained resource
// versioning of §4.5.
package resource

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/onionoriginals/originals/errors"
)

// Resource is a single immutable version of a logical resource.
type Resource struct {
	ID                  string
	Type                string
	ContentType         string
	Content             []byte // may be nil post-anchor
	Hash                string // lowercase hex SHA-256 of Content
	Version             int    // 1-based
	PreviousVersionHash string // empty for v1
	CreatedAt           time.Time
}

// HashContent computes the canonical hash for content (§3 invariant).
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// History is the ordered, append-only version list for one logical id.
type History struct {
	ID       string
	Versions []Resource
}

// Current returns the latest version, or false if the history is empty.
func (h History) Current() (Resource, bool) {
	if len(h.Versions) == 0 {
		return Resource{}, false
	}
	return h.Versions[len(h.Versions)-1], true
}

// Manager owns the per-id version histories for one asset (§5
// shared-resource policy: exclusively owned by one Asset, never shared
// cross-asset).
type Manager struct {
	histories map[string]*History
}

// NewManager returns an empty version manager.
func NewManager() *Manager {
	return &Manager{histories: make(map[string]*History)}
}

// AddVersion appends a new version to resourceId's history (§4.5). The
// first version must have no prevHash; every later version's prevHash must
// equal its predecessor's hash.
func (m *Manager) AddVersion(resourceId, resourceType, hash, contentType string, content []byte, prevHash string, changes string) (Resource, error) {
	h, ok := m.histories[resourceId]
	if !ok {
		h = &History{ID: resourceId}
		m.histories[resourceId] = h
	}

	version := len(h.Versions) + 1

	if version == 1 {
		if prevHash != "" {
			return Resource{}, errors.New(errors.ERR_INVALID_INPUT, "first version of resource %q must not carry a previousVersionHash", resourceId)
		}
	} else {
		prev := h.Versions[len(h.Versions)-1]
		if prevHash != prev.Hash {
			return Resource{}, errors.New(errors.ERR_INVALID_INPUT,
				"previousVersionHash %q does not match version %d's hash %q for resource %q", prevHash, prev.Version, prev.Hash, resourceId)
		}
	}

	r := Resource{
		ID:                  resourceId,
		Type:                resourceType,
		ContentType:         contentType,
		Content:             content,
		Hash:                hash,
		Version:             version,
		PreviousVersionHash: prevHash,
		CreatedAt:           time.Now().UTC(),
	}

	h.Versions = append(h.Versions, r)
	return r, nil
}

// GetHistory returns the full version history for id.
func (m *Manager) GetHistory(id string) (History, bool) {
	h, ok := m.histories[id]
	if !ok {
		return History{}, false
	}
	return *h, true
}

// GetVersion returns version n (1-based) of id.
func (m *Manager) GetVersion(id string, n int) (Resource, bool) {
	h, ok := m.histories[id]
	if !ok || n < 1 || n > len(h.Versions) {
		return Resource{}, false
	}
	return h.Versions[n-1], true
}

// GetCurrentVersion returns the latest version of id.
func (m *Manager) GetCurrentVersion(id string) (Resource, bool) {
	h, ok := m.histories[id]
	if !ok {
		return Resource{}, false
	}
	return h.Current()
}

// VerifyChain reports whether id's history is a well-formed hash chain:
// version numbers 1..N without gaps, v1 has no prevHash, and every later
// version's prevHash equals its predecessor's hash.
func (m *Manager) VerifyChain(id string) bool {
	h, ok := m.histories[id]
	if !ok {
		return false
	}
	for i, v := range h.Versions {
		if v.Version != i+1 {
			return false
		}
		if i == 0 {
			if v.PreviousVersionHash != "" {
				return false
			}
			continue
		}
		if v.PreviousVersionHash != h.Versions[i-1].Hash {
			return false
		}
	}
	return true
}
