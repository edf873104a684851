package asset

import (
	"time"

	"github.com/onionoriginals/originals/errors"
	"github.com/onionoriginals/originals/resource"
)

// AddResourceVersion appends a new immutable version of resourceId (§4.5).
// The old version remains present in history ("immutable history"); a
// resourceUpdates provenance entry is recorded; a "resource:version:created"
// event is emitted after this call returns.
func (a *Asset) AddResourceVersion(resourceId string, content []byte, contentType string, changes string) (resource.Resource, error) {
	a.bus.Enter()
	defer a.bus.Exit()

	current, ok := a.versions.GetCurrentVersion(resourceId)
	if !ok {
		return resource.Resource{}, errors.New(errors.ERR_NOT_FOUND, "unknown resource id: %s", resourceId)
	}

	hash := resource.HashContent(content)
	if hash == current.Hash {
		return resource.Resource{}, errors.New(errors.ERR_CONTENT_UNCHANGED, "content for resource %q is unchanged from the current version", resourceId)
	}

	next, err := a.versions.AddVersion(resourceId, current.Type, hash, contentType, content, current.Hash, changes)
	if err != nil {
		return resource.Resource{}, err
	}

	a.provenance.ResourceUpdates = append(a.provenance.ResourceUpdates, ResourceUpdate{
		ResourceID:  resourceId,
		FromVersion: current.Version,
		ToVersion:   next.Version,
		FromHash:    current.Hash,
		ToHash:      next.Hash,
		Changes:     changes,
		Timestamp:   time.Now().UTC(),
	})

	a.bus.Emit(eventResourceVersionCreated(next))

	return next, nil
}
