// Package adapters defines the pluggable external collaborators of §4.11:
// Bitcoin facts (ordinals, fees), witnessing, and external signing. The
// core keeps no process-wide singletons (§9 "global state -> dependency
// injection"); the ordinals, fee, storage, key-store, witness and broadcast
// adapters are wired explicitly through config.OriginalsConfig, which has no
// field for ExternalSigner or ExternalVerifier.
package adapters

import "context"

// InscriptionInfo is the normalized shape of an ordinal inscription as
// returned by an OrdinalsProvider.
type InscriptionInfo struct {
	InscriptionID string
	TxID          string
	RevealTxID    string
	Satoshi       uint64
	Content       []byte
	ContentType   string
	Vout          *uint32
	BlockHeight   *uint32
	CommitTxID    string
	FeeRate       *float64
}

// TransferResult is the outcome of OrdinalsProvider.TransferInscription.
type TransferResult struct {
	TxID          string
	Vin           *uint32
	Vout          *uint32
	Fee           *uint64
	BlockHeight   *uint32
	Confirmations *uint32
	Satoshi       *uint64
}

// SatInfo is the response shape of OrdinalsProvider.GetSatInfo.
type SatInfo struct {
	InscriptionIDs []string
}

// ResolvedInscription is the response shape of OrdinalsProvider.ResolveInscription.
type ResolvedInscription struct {
	ID          string
	Satoshi     uint64
	ContentType string
	ContentURL  string
}

// CreateInscriptionRequest is the input to OrdinalsProvider.CreateInscription.
type CreateInscriptionRequest struct {
	Data        []byte
	ContentType string
	FeeRate     *float64
}

// TransferOptions carries optional overrides to OrdinalsProvider.TransferInscription.
type TransferOptions struct {
	FeeRate *float64
}

// OrdinalsProvider is the facade over Bitcoin facts delegated to an
// ordinals-indexer collaborator (§1 Non-goals: running the node/indexer
// itself is out of scope).
type OrdinalsProvider interface {
	CreateInscription(ctx context.Context, req CreateInscriptionRequest) (InscriptionInfo, error)
	GetInscriptionByID(ctx context.Context, id string) (*InscriptionInfo, error)
	GetInscriptionsBySatoshi(ctx context.Context, sat uint64) ([]InscriptionInfo, error)
	TransferInscription(ctx context.Context, id string, toAddr string, opts TransferOptions) (TransferResult, error)
	EstimateFee(ctx context.Context, targetBlocks int) (float64, error)
	GetSatInfo(ctx context.Context, sat uint64) (SatInfo, error)
	ResolveInscription(ctx context.Context, id string) (ResolvedInscription, error)
	GetMetadata(ctx context.Context, id string) (map[string]interface{}, error)
}

// FeeOracle is an external fee-rate estimator consulted before the
// ordinals provider's own estimate (§4.9 fee-rate resolution order).
type FeeOracle interface {
	EstimateFeeRate(ctx context.Context, targetBlocks int) (float64, error)
}

// DataIntegrityProofShape mirrors the proof fields of §4.6, kept here (not
// in the credential package) so adapters.Witness has no import cycle back
// into credential.
type DataIntegrityProofShape struct {
	Type               string
	Cryptosuite        string
	Created            string
	VerificationMethod string
	ProofPurpose       string
	ProofValue         string
	TxID               string
	Satoshi            *uint64
	InscriptionID       string
	BlockHeight         *uint32
}

// Witness produces an attestation proof over a digest, e.g. by inscribing
// it on Bitcoin.
type Witness interface {
	Witness(ctx context.Context, digestMultibase string) (DataIntegrityProofShape, error)
}

// ExternalSigner lets a host application supply signing capability (e.g.
// for did:webvh log entries) without handing the engine the raw private
// key.
type ExternalSigner interface {
	Sign(ctx context.Context, message []byte) ([]byte, error)
	VerificationMethodID() string
	PublicKeyBytes() []byte
}

// ExternalVerifier is the read-side counterpart of ExternalSigner.
type ExternalVerifier interface {
	Verify(ctx context.Context, signature, message, publicKey []byte) bool
}

// Broadcaster submits raw Bitcoin transactions and polls for confirmation
// (§4.9 reveal, explicitly outside this spec's direct I/O but required to
// complete an inscription).
type Broadcaster interface {
	BroadcastTx(ctx context.Context, rawTxHex string) (txid string, err error)
	GetConfirmation(ctx context.Context, txid string) (confirmed bool, confirmations int, err error)
}

// StorageAdapter persists checkpoint and audit artifacts (§4.10, §6
// "Checkpoint persistence layout"). The core never talks to a database
// directly (§1 Non-goals); this is the seam.
type StorageAdapter interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
}

// KeyStore is delegated key storage at rest (§1 Non-goals: the engine
// never persists private keys itself).
type KeyStore interface {
	GetPrivateKeyMultibase(ctx context.Context, verificationMethodID string) (string, error)
}
