package credential

import (
	"crypto/sha256"

	"github.com/onionoriginals/originals/canonical"
	"github.com/onionoriginals/originals/errors"
)

// canonicalDigest builds the 64-byte digest signed/verified for a credential
// (§4.6): concat(SHA-256(canonical proof-input), SHA-256(canonical
// unsigned-credential)).
func canonicalDigest(vc VC, proof Proof) ([]byte, error) {
	proofInput := proof
	proofInput.ProofValue = ""
	if len(proofInput.Context) == 0 {
		proofInput.Context = vc.Context
	}

	unsignedCred := vc
	unsignedCred.Proof = nil

	canonProof, err := canonical.Canonicalize(proofInput)
	if err != nil {
		return nil, errors.New(errors.ERR_CANONICALIZATION_ERROR, "failed to canonicalize proof config", err)
	}
	canonCred, err := canonical.Canonicalize(unsignedCred)
	if err != nil {
		return nil, errors.New(errors.ERR_CANONICALIZATION_ERROR, "failed to canonicalize credential", err)
	}

	hProof := sha256.Sum256(canonProof)
	hCred := sha256.Sum256(canonCred)

	digest := make([]byte, 0, 64)
	digest = append(digest, hProof[:]...)
	digest = append(digest, hCred[:]...)
	return digest, nil
}
