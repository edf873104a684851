package migration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/originals/adapters"
	"github.com/onionoriginals/originals/bitcoinnet"
	"github.com/onionoriginals/originals/config"
	"github.com/onionoriginals/originals/crypto"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
	"github.com/onionoriginals/originals/inscription"
	"github.com/onionoriginals/originals/lifecycle"
	"github.com/onionoriginals/originals/resource"
)

type memStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStorage() *memStorage { return &memStorage{data: map[string][]byte{}} }

func (s *memStorage) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte{}, value...)
	return nil
}

func (s *memStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

type memKeyStore struct {
	keys map[string]string
}

func (k *memKeyStore) GetPrivateKeyMultibase(ctx context.Context, verificationMethodID string) (string, error) {
	key, ok := k.keys[verificationMethodID]
	if !ok {
		return "", errors.New(errors.ERR_NOT_FOUND, "no key for %s", verificationMethodID)
	}
	return key, nil
}

type stubBroadcaster struct {
	txid string
}

func (s stubBroadcaster) BroadcastTx(ctx context.Context, rawTxHex string) (string, error) {
	return s.txid, nil
}

func (s stubBroadcaster) GetConfirmation(ctx context.Context, txid string) (bool, int, error) {
	return true, 1, nil
}

type stubOrdinals struct {
	satoshi uint64
}

func (s stubOrdinals) CreateInscription(ctx context.Context, req adapters.CreateInscriptionRequest) (adapters.InscriptionInfo, error) {
	return adapters.InscriptionInfo{}, nil
}
func (s stubOrdinals) GetInscriptionByID(ctx context.Context, id string) (*adapters.InscriptionInfo, error) {
	return &adapters.InscriptionInfo{InscriptionID: id, Satoshi: s.satoshi}, nil
}
func (s stubOrdinals) GetInscriptionsBySatoshi(ctx context.Context, sat uint64) ([]adapters.InscriptionInfo, error) {
	return nil, nil
}
func (s stubOrdinals) TransferInscription(ctx context.Context, id string, toAddr string, opts adapters.TransferOptions) (adapters.TransferResult, error) {
	return adapters.TransferResult{}, nil
}
func (s stubOrdinals) EstimateFee(ctx context.Context, targetBlocks int) (float64, error) {
	return 5, nil
}
func (s stubOrdinals) GetSatInfo(ctx context.Context, sat uint64) (adapters.SatInfo, error) {
	return adapters.SatInfo{}, nil
}
func (s stubOrdinals) ResolveInscription(ctx context.Context, id string) (adapters.ResolvedInscription, error) {
	return adapters.ResolvedInscription{}, nil
}
func (s stubOrdinals) GetMetadata(ctx context.Context, id string) (map[string]interface{}, error) {
	return nil, nil
}

type failingBroadcaster struct{}

func (failingBroadcaster) BroadcastTx(ctx context.Context, rawTxHex string) (string, error) {
	return "", errors.New(errors.ERR_UNKNOWN, "network unreachable")
}

func (failingBroadcaster) GetConfirmation(ctx context.Context, txid string) (bool, int, error) {
	return false, 0, nil
}

// harnessOpts lets each test wire exactly the adapters it needs before the
// lifecycle and migration managers are constructed, since both hold their
// own copy of OriginalsConfig and mutating one after construction does not
// reach the other.
type harnessOpts struct {
	keyStore    adapters.KeyStore
	broadcaster adapters.Broadcaster
	ordinals    adapters.OrdinalsProvider
}

func newHarness(t *testing.T, opts harnessOpts) (*Manager, *lifecycle.Manager, *memStorage) {
	t.Helper()
	store := newMemStorage()
	cfg := config.OriginalsConfig{
		Network:          bitcoinnet.Regtest,
		DefaultKeyType:   crypto.KeyTypeEd25519,
		StorageAdapter:   store,
		KeyStore:         opts.keyStore,
		Broadcaster:      opts.broadcaster,
		OrdinalsProvider: opts.ordinals,
	}
	dids := did.NewManager(crypto.KeyTypeEd25519, nil, nil)
	lm := lifecycle.NewManager(cfg, dids)
	mm := NewManager(cfg, lm)
	return mm, lm, store
}

func helloResource() lifecycle.ResourceInput {
	return lifecycle.ResourceInput{
		ID:          "r1",
		Type:        "text",
		ContentType: "text/plain",
		Content:     []byte("hello"),
		Hash:        resource.HashContent([]byte("hello")),
	}
}

func TestValidateDIDCompatibilityRejectsReversePath(t *testing.T) {
	res := ValidateDIDCompatibility(did.LayerWebVH, did.LayerPeer, Plan{})
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
}

func TestValidateDIDCompatibilityRequiresDomainForWebVH(t *testing.T) {
	res := ValidateDIDCompatibility(did.LayerPeer, did.LayerWebVH, Plan{})
	assert.False(t, res.Valid)
}

func TestValidateDIDCompatibilityRejectsNonPositiveFeeRate(t *testing.T) {
	rate := -1.0
	res := ValidateDIDCompatibility(did.LayerPeer, did.LayerBtco, Plan{FeeRate: &rate})
	assert.False(t, res.Valid)
}

func TestExecutePublishToWebHappyPath(t *testing.T) {
	keys := &memKeyStore{keys: map[string]string{}}
	mm, lm, store := newHarness(t, harnessOpts{keyStore: keys})
	a, kp, err := lm.CreateAsset(context.Background(), []lifecycle.ResourceInput{helloResource()})
	require.NoError(t, err)

	vmID := a.Document.AssertionMethod[0]
	keys.keys[vmID] = kp.PrivateKeyMultibase

	result, err := mm.Execute(context.Background(), a, Plan{
		AssetID: a.ID(),
		From:    did.LayerPeer,
		To:      did.LayerWebVH,
		Domain:  "example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, result.State)
	assert.Equal(t, did.LayerWebVH, a.CurrentLayer)

	body, ok, err := store.Get(context.Background(), auditKey(result.MigrationID))
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, body)

	_, ok, err = store.Get(context.Background(), checkpointKey(result.Audit.CheckpointID))
	require.NoError(t, err)
	assert.False(t, ok, "checkpoint should be deleted after a completed migration")
}

func TestExecuteRejectsReversePathWithoutCheckpointing(t *testing.T) {
	mm, lm, store := newHarness(t, harnessOpts{})
	a, _, err := lm.CreateAsset(context.Background(), []lifecycle.ResourceInput{helloResource()})
	require.NoError(t, err)

	result, err := mm.Execute(context.Background(), a, Plan{
		AssetID: a.ID(),
		From:    did.LayerWebVH,
		To:      did.LayerPeer,
	})
	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)

	var structured *errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, errors.ERR_INVALID_MIGRATION_PATH, structured.Code)

	_, ok, _ := store.Get(context.Background(), auditKey(result.MigrationID))
	assert.True(t, ok, "a failed validation still writes an audit record")
}

func TestExecuteRollsBackOnBroadcastFailure(t *testing.T) {
	keys := &memKeyStore{keys: map[string]string{}}
	mm, lm, store := newHarness(t, harnessOpts{
		keyStore:    keys,
		broadcaster: failingBroadcaster{},
		ordinals:    stubOrdinals{satoshi: 999},
	})
	a, kp, err := lm.CreateAsset(context.Background(), []lifecycle.ResourceInput{helloResource()})
	require.NoError(t, err)

	vmID := a.Document.AssertionMethod[0]
	keys.keys[vmID] = kp.PrivateKeyMultibase

	beforeDoc := a.Document

	feeRate := 5.0
	result, err := mm.Execute(context.Background(), a, Plan{
		AssetID: a.ID(),
		From:    did.LayerPeer,
		To:      did.LayerBtco,
		FeeRate: &feeRate,
		UTXOs: []inscription.UTXO{{
			TxID:         "aa11bb22cc33dd44ee55ff66aa11bb22cc33dd44ee55ff66aa11bb22cc33dd44",
			Vout:         0,
			Value:        100_000,
			ScriptPubKey: []byte{0x51},
		}},
	})
	require.Error(t, err)
	assert.Equal(t, StateRolledBack, result.State)
	assert.Equal(t, did.LayerPeer, a.CurrentLayer)
	assert.Equal(t, beforeDoc.ID, a.Document.ID)

	_, ok, _ := store.Get(context.Background(), auditKey(result.MigrationID))
	assert.True(t, ok)
}

func TestAuditRecordTamperDetection(t *testing.T) {
	rec := AuditRecord{
		MigrationID: "m1",
		AssetID:     "did:peer:abc",
		From:        "did:peer",
		To:          "did:webvh",
		FinalState:  StateCompleted,
		Timestamp:   nowUTC(),
	}
	signed, err := signAuditRecord(rec)
	require.NoError(t, err)

	ok, err := VerifyAuditRecord(signed)
	require.NoError(t, err)
	assert.True(t, ok)

	tampered := signed
	tampered.AssetID = "did:peer:tampered"
	ok, err = VerifyAuditRecord(tampered)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, canTransition(StatePending, StateValidating))
	assert.True(t, canTransition(StateInProgress, StateAnchoring))
	assert.True(t, canTransition(StateFailed, StateQuarantined))
	assert.False(t, canTransition(StatePending, StateCompleted))
}
