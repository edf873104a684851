// Package credential implements the Credential Manager of §4.6: issuance,
// canonicalization, signing and verification of W3C Verifiable Credentials
// carrying Data Integrity proofs.
package credential

import (
	"strings"
	"time"

	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
)

// ContextVCv1 is the W3C VC v1 context every credential must include.
const ContextVCv1 = "https://www.w3.org/2018/credentials/v1"

// Kind enumerates the credential kinds this engine issues.
type Kind string

const (
	KindResourceCreated  Kind = "ResourceCreated"
	KindResourceUpdated  Kind = "ResourceUpdated"
	KindResourceMigrated Kind = "ResourceMigrated"
)

// Proof is a DataIntegrityProof (§3).
type Proof struct {
	Context             []string `json:"@context,omitempty"`
	Type                string   `json:"type"`
	Cryptosuite         string   `json:"cryptosuite,omitempty"`
	Created             string   `json:"created,omitempty"`
	VerificationMethod  string   `json:"verificationMethod"`
	ProofPurpose        string   `json:"proofPurpose"`
	ProofValue          string   `json:"proofValue,omitempty"`
	// PublicKeyMultibase is an inline key on the proof itself, used only by
	// the unstructured (no-cryptosuite) fallback verification path when no
	// DID Manager is available to resolve verificationMethod.
	PublicKeyMultibase string `json:"publicKeyMultibase,omitempty"`
}

// Issuer is either a bare DID string or an object carrying an id.
type Issuer struct {
	ID string `json:"id"`
}

// String returns the issuer's DID.
func (i Issuer) String() string { return i.ID }

// VC is a Verifiable Credential (§3).
type VC struct {
	Context           []string    `json:"@context"`
	Type              []string    `json:"type"`
	Issuer            string      `json:"issuer"`
	IssuanceDate      string      `json:"issuanceDate"`
	CredentialSubject interface{} `json:"credentialSubject"`
	Proof             *Proof      `json:"proof,omitempty"`
}

// CreateResourceCredential builds an unsigned VC of kind for subject issued
// by issuerDid (§4.6).
func CreateResourceCredential(kind Kind, subject interface{}, issuerDid string) (VC, error) {
	if err := did.ValidateDID(issuerDid); err != nil {
		return VC{}, err
	}

	return VC{
		Context:           []string{ContextVCv1},
		Type:              []string{"VerifiableCredential", string(kind)},
		Issuer:            issuerDid,
		IssuanceDate:      time.Now().UTC().Format(time.RFC3339),
		CredentialSubject: subject,
	}, nil
}

// ValidateDID re-exports did.ValidateDID for convenience.
func ValidateDID(d string) error { return did.ValidateDID(d) }

// ValidateCredential checks the structural requirements of §4.6.
func ValidateCredential(vc VC) error {
	hasCtx := false
	for _, c := range vc.Context {
		if c == ContextVCv1 {
			hasCtx = true
			break
		}
	}
	if !hasCtx {
		return errors.New(errors.ERR_INVALID_INPUT, "credential @context must include %s", ContextVCv1)
	}

	hasType := false
	for _, t := range vc.Type {
		if t == "VerifiableCredential" {
			hasType = true
			break
		}
	}
	if !hasType {
		return errors.New(errors.ERR_INVALID_INPUT, "credential type must include VerifiableCredential")
	}

	if err := did.ValidateDID(vc.Issuer); err != nil {
		return errors.New(errors.ERR_INVALID_INPUT, "credential issuer is not a valid DID", err)
	}

	if _, err := time.Parse(time.RFC3339, vc.IssuanceDate); err != nil {
		return errors.New(errors.ERR_INVALID_INPUT, "credential issuanceDate is not a parseable RFC3339 timestamp", err)
	}

	if vc.CredentialSubject == nil {
		return errors.New(errors.ERR_INVALID_INPUT, "credential is missing credentialSubject")
	}

	return nil
}

// ValidateDIDDocument re-exports did.ValidateDocument for convenience.
func ValidateDIDDocument(doc did.Document) error { return did.ValidateDocument(doc) }

// verificationMethodFragment splits a DID URL into its base DID and fragment.
func verificationMethodFragment(vmID string) (baseDID string, fragment string, ok bool) {
	idx := strings.Index(vmID, "#")
	if idx < 0 {
		return "", "", false
	}
	return vmID[:idx], vmID[idx+1:], true
}
