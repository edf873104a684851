package did

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/originals/adapters"
	"github.com/onionoriginals/originals/bitcoinnet"
	"github.com/onionoriginals/originals/crypto"
)

func TestCreateDidPeer(t *testing.T) {
	doc, kp, err := CreateDidPeer([]ResourceHash{{Hash: "abc123"}}, crypto.KeyTypeEd25519)
	require.NoError(t, err)

	assert.Regexp(t, `^did:peer:z`, doc.ID)
	require.Len(t, doc.VerificationMethod, 1)
	assert.Equal(t, doc.ID+"#key-0", doc.VerificationMethod[0].ID)
	assert.Equal(t, []string{doc.ID + "#key-0"}, doc.Authentication)
	assert.Equal(t, []string{doc.ID + "#key-0"}, doc.AssertionMethod)
	assert.NoError(t, ValidateDocument(doc))
	assert.NotEmpty(t, kp.PrivateKeyMultibase)
}

func TestCreateDidPeerRejectsEmptyResources(t *testing.T) {
	_, _, err := CreateDidPeer(nil, crypto.KeyTypeEd25519)
	assert.Error(t, err)
}

func TestMigrateToDidWebVHPreservesKeyMaterial(t *testing.T) {
	doc, _, err := CreateDidPeer([]ResourceHash{{Hash: "abc123"}}, crypto.KeyTypeEd25519)
	require.NoError(t, err)

	webDoc, err := MigrateToDidWebVH(doc, "example.com")
	require.NoError(t, err)

	assert.Regexp(t, `^did:webvh:example\.com:u-[0-9a-f]{16}$`, webDoc.ID)
	require.Len(t, webDoc.VerificationMethod, 1)
	assert.Equal(t, doc.VerificationMethod[0].PublicKeyMultibase, webDoc.VerificationMethod[0].PublicKeyMultibase)
	assert.Equal(t, webDoc.ID, webDoc.VerificationMethod[0].Controller)
	assert.Equal(t, webDoc.ID+"#key-0", webDoc.AssertionMethod[0])
}

func TestMigrateToDidWebVHRequiresDomain(t *testing.T) {
	doc, _, err := CreateDidPeer([]ResourceHash{{Hash: "abc123"}}, crypto.KeyTypeEd25519)
	require.NoError(t, err)

	_, err = MigrateToDidWebVH(doc, "")
	assert.Error(t, err)
}

func TestMigrateToDidBtco(t *testing.T) {
	doc, _, err := CreateDidPeer([]ResourceHash{{Hash: "abc123"}}, crypto.KeyTypeEd25519)
	require.NoError(t, err)

	btcoDoc, err := MigrateToDidBtco(doc, 12345, bitcoinnet.SatTest)
	require.NoError(t, err)

	assert.Equal(t, "did:btco:test:12345", btcoDoc.ID)
	assert.Equal(t, btcoDoc.ID+"#key-0", btcoDoc.VerificationMethod[0].ID)
}

func TestResolveDidPeerFromCache(t *testing.T) {
	doc, _, err := CreateDidPeer([]ResourceHash{{Hash: "abc123"}}, crypto.KeyTypeEd25519)
	require.NoError(t, err)

	peer := func(d string) *Document {
		if d == doc.ID {
			return &doc
		}
		return nil
	}

	result, err := ResolveDid(context.Background(), doc.ID, nil, nil, peer)
	require.NoError(t, err)
	require.NotNil(t, result.DIDDocument)
	assert.Equal(t, doc.ID, result.DIDDocument.ID)
}

func TestResolveDidPeerNotFound(t *testing.T) {
	result, err := ResolveDid(context.Background(), "did:peer:zunknown", nil, nil, func(string) *Document { return nil })
	require.NoError(t, err)
	assert.Nil(t, result.DIDDocument)
	assert.Equal(t, "notFound", result.ResolutionMetadata.Error)
}

type stubOrdinals struct {
	infos []adapters.InscriptionInfo
	meta  map[string]map[string]interface{}
}

func (s stubOrdinals) CreateInscription(ctx context.Context, req adapters.CreateInscriptionRequest) (adapters.InscriptionInfo, error) {
	return adapters.InscriptionInfo{}, nil
}
func (s stubOrdinals) GetInscriptionByID(ctx context.Context, id string) (*adapters.InscriptionInfo, error) {
	return nil, nil
}
func (s stubOrdinals) GetInscriptionsBySatoshi(ctx context.Context, sat uint64) ([]adapters.InscriptionInfo, error) {
	return s.infos, nil
}
func (s stubOrdinals) TransferInscription(ctx context.Context, id string, toAddr string, opts adapters.TransferOptions) (adapters.TransferResult, error) {
	return adapters.TransferResult{}, nil
}
func (s stubOrdinals) EstimateFee(ctx context.Context, targetBlocks int) (float64, error) {
	return 1, nil
}
func (s stubOrdinals) GetSatInfo(ctx context.Context, sat uint64) (adapters.SatInfo, error) {
	return adapters.SatInfo{}, nil
}
func (s stubOrdinals) ResolveInscription(ctx context.Context, id string) (adapters.ResolvedInscription, error) {
	return adapters.ResolvedInscription{}, nil
}
func (s stubOrdinals) GetMetadata(ctx context.Context, id string) (map[string]interface{}, error) {
	return s.meta[id], nil
}

func TestResolveBtcoFindsValidInscription(t *testing.T) {
	wantID := "did:btco:test:12345"
	ordinals := stubOrdinals{
		infos: []adapters.InscriptionInfo{{InscriptionID: "insc1", Content: []byte("BTCO DID: " + wantID)}},
		meta: map[string]map[string]interface{}{
			"insc1": {
				"@context": []interface{}{ContextDIDv1},
				"id":       wantID,
			},
		},
	}

	result, err := ResolveDid(context.Background(), wantID, ordinals, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, result.DIDDocument)
	assert.Equal(t, wantID, result.DIDDocument.ID)
	assert.Equal(t, 1, result.ResolutionMetadata.TotalInscriptions)
}

func TestResolveBtcoRequiresOrdinalsProvider(t *testing.T) {
	_, err := ResolveDid(context.Background(), "did:btco:test:12345", nil, nil, nil)
	assert.Error(t, err)
}

func TestValidateDIDRejectsUnknownMethod(t *testing.T) {
	assert.Error(t, ValidateDID("did:example:123"))
	assert.NoError(t, ValidateDID("did:peer:abc"))
}
