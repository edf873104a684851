package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/originals/credential"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/events"
	"github.com/onionoriginals/originals/resource"
)

func helloResource() resource.Resource {
	content := []byte("hello")
	return resource.Resource{
		ID:          "r1",
		Type:        "text",
		ContentType: "text/plain",
		Content:     content,
		Hash:        resource.HashContent(content),
	}
}

func TestNewRejectsEmptyResources(t *testing.T) {
	_, err := New(nil, did.Document{ID: "did:peer:zabc"}, "creator")
	assert.Error(t, err)
}

func TestNewSetsInitialLayerAndProvenance(t *testing.T) {
	a, err := New([]resource.Resource{helloResource()}, did.Document{ID: "did:peer:zabc"}, "creator")
	require.NoError(t, err)

	assert.Equal(t, did.LayerPeer, a.CurrentLayer)
	assert.Equal(t, "did:peer:zabc", a.ID())
	assert.Equal(t, "creator", a.GetProvenance().Creator)
	require.Len(t, a.Resources(), 1)
	assert.Equal(t, "r1", a.Resources()[0].ID)
}

func TestMigratePeerToWebVHIsAllowed(t *testing.T) {
	a, err := New([]resource.Resource{helloResource()}, did.Document{ID: "did:peer:zabc"}, "creator")
	require.NoError(t, err)

	newDoc := did.Document{ID: "did:webvh:example.com:u-aabbccddeeff0011"}
	err = a.Migrate(did.LayerWebVH, newDoc, credential.VC{}, MigrationMeta{Domain: "example.com"})
	require.NoError(t, err)

	assert.Equal(t, did.LayerWebVH, a.CurrentLayer)
	assert.Equal(t, newDoc.ID, a.Document.ID)
	require.Len(t, a.GetProvenance().Migrations, 1)
	assert.Equal(t, string(did.LayerPeer), a.GetProvenance().Migrations[0].From)
	assert.Equal(t, string(did.LayerWebVH), a.GetProvenance().Migrations[0].To)
}

func TestMigrateRejectsBackwardTransition(t *testing.T) {
	a, err := New([]resource.Resource{helloResource()}, did.Document{ID: "did:peer:zabc"}, "creator")
	require.NoError(t, err)

	err = a.Migrate(did.LayerPeer, a.Document, credential.VC{}, MigrationMeta{})
	assert.Error(t, err)
}

func TestMigrateEmitsEventsAfterReturn(t *testing.T) {
	a, err := New([]resource.Resource{helloResource()}, did.Document{ID: "did:peer:zabc"}, "creator")
	require.NoError(t, err)

	var names []string
	a.OnEvent(func(e events.Event) { names = append(names, e.Name) })

	newDoc := did.Document{ID: "did:webvh:example.com:u-aabbccddeeff0011"}
	err = a.Migrate(did.LayerWebVH, newDoc, credential.VC{}, MigrationMeta{})
	require.NoError(t, err)

	assert.Equal(t, []string{"asset:migrated", "credential:issued"}, names)
}

func TestAddResourceVersionRejectsUnchangedContent(t *testing.T) {
	a, err := New([]resource.Resource{helloResource()}, did.Document{ID: "did:peer:zabc"}, "creator")
	require.NoError(t, err)

	_, err = a.AddResourceVersion("r1", []byte("hello"), "text/plain", "no-op")
	assert.Error(t, err)
}

func TestAddResourceVersionAppendsHistoryAndProvenance(t *testing.T) {
	a, err := New([]resource.Resource{helloResource()}, did.Document{ID: "did:peer:zabc"}, "creator")
	require.NoError(t, err)

	next, err := a.AddResourceVersion("r1", []byte("hello world"), "text/plain", "expanded greeting")
	require.NoError(t, err)
	assert.Equal(t, 2, next.Version)

	require.Len(t, a.GetProvenance().ResourceUpdates, 1)
	update := a.GetProvenance().ResourceUpdates[0]
	assert.Equal(t, "r1", update.ResourceID)
	assert.Equal(t, 1, update.FromVersion)
	assert.Equal(t, 2, update.ToVersion)

	assert.Equal(t, "hello world", string(a.Resources()[0].Content))
}

func TestAddResourceVersionRejectsUnknownResource(t *testing.T) {
	a, err := New([]resource.Resource{helloResource()}, did.Document{ID: "did:peer:zabc"}, "creator")
	require.NoError(t, err)

	_, err = a.AddResourceVersion("unknown", []byte("x"), "text/plain", "")
	assert.Error(t, err)
}

func TestGetProvenanceReturnsDefensiveCopy(t *testing.T) {
	a, err := New([]resource.Resource{helloResource()}, did.Document{ID: "did:peer:zabc"}, "creator")
	require.NoError(t, err)

	p1 := a.GetProvenance()
	p1.Creator = "mutated"

	p2 := a.GetProvenance()
	assert.Equal(t, "creator", p2.Creator)
}
