package migration

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/onionoriginals/originals/adapters"
	"github.com/onionoriginals/originals/canonical"
	"github.com/onionoriginals/originals/encoding"
	"github.com/onionoriginals/originals/errors"
)

// AuditRecord is the tamper-evident log entry written after every
// migration attempt, successful or not (§4.10, §8 invariant 8).
type AuditRecord struct {
	MigrationID  string    `json:"migrationId"`
	AssetID      string    `json:"assetId"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	FinalState   State     `json:"finalState"`
	Error        string    `json:"error,omitempty"`
	CheckpointID string    `json:"checkpointId,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Signature    string    `json:"signature"`
}

// unsigned strips Signature so the record can be canonicalized the same
// way at signing time and at verification time.
func (r AuditRecord) unsigned() AuditRecord {
	r.Signature = ""
	return r
}

// signAuditRecord canonicalizes r without its signature, hashes with
// SHA-256, and sets Signature to the base64url-nopad multibase encoding
// of the digest (§4.10 "Audit record").
func signAuditRecord(r AuditRecord) (AuditRecord, error) {
	canon, err := canonical.Canonicalize(r.unsigned())
	if err != nil {
		return AuditRecord{}, err
	}
	digest := sha256.Sum256(canon)
	sig, err := encoding.MultibaseEncode(digest[:], encoding.Base64URLNoPad)
	if err != nil {
		return AuditRecord{}, err
	}
	r.Signature = sig
	return r, nil
}

// VerifyAuditRecord recomputes the signature from r's canonical form sans
// signature and compares; a mismatch means the record was tampered with.
func VerifyAuditRecord(r AuditRecord) (bool, error) {
	resigned, err := signAuditRecord(r.unsigned())
	if err != nil {
		return false, err
	}
	return resigned.Signature == r.Signature, nil
}

func auditKey(migrationID string) string {
	return fmt.Sprintf("audit/migrations/%s.json", migrationID)
}

// writeAuditRecord signs and persists r and returns any failure. Execute
// surfaces that failure after a completed migration; the failure path
// (fail) discards it so the migration's own error stays the one returned.
// With a nil store nothing is persisted and nil is returned.
func writeAuditRecord(ctx context.Context, store adapters.StorageAdapter, r AuditRecord) error {
	signed, err := signAuditRecord(r)
	if err != nil {
		return err
	}
	body, err := json.Marshal(signed)
	if err != nil {
		return errors.New(errors.ERR_INVALID_INPUT, "marshal audit record %s", r.MigrationID, err)
	}
	if store == nil {
		return nil
	}
	if err := store.Put(ctx, auditKey(r.MigrationID), body); err != nil {
		return errors.New(errors.ERR_UNKNOWN, "persist audit record %s", r.MigrationID, err)
	}
	return nil
}
