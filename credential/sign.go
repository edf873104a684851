package credential

import (
	"context"
	"time"

	"github.com/onionoriginals/originals/crypto"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/encoding"
	"github.com/onionoriginals/originals/errors"
)

// VerificationMethodResolver resolves a DID URL (did#fragment) to its
// verification method, used by the structured signing/verification path
// when a DID Manager is available.
type VerificationMethodResolver interface {
	ResolveVerificationMethod(ctx context.Context, verificationMethodID string) (did.VerificationMethod, error)
}

// SignCredential attaches a DataIntegrityProof to vc (§4.6).
//
// If resolver is non-nil and verificationMethod looks like a DID URL
// (contains '#'), the structured path resolves the verification method,
// tags the proof with the cryptosuite matching its key type, and signs the
// canonical digest. Otherwise the fallback path signs with defaultKeyType
// and omits the cryptosuite tag.
func SignCredential(ctx context.Context, vc VC, privateKeyMultibase string, verificationMethod string, resolver VerificationMethodResolver, defaultKeyType crypto.KeyType) (VC, error) {
	keyType := defaultKeyType
	cryptosuite := ""

	if resolver != nil {
		if _, _, ok := verificationMethodFragment(verificationMethod); ok {
			vm, err := resolver.ResolveVerificationMethod(ctx, verificationMethod)
			if err != nil {
				return VC{}, errors.New(errors.ERR_NOT_FOUND, "could not resolve verification method %q", verificationMethod, err)
			}
			kt, err := crypto.KeyTypeFromVerificationMethodType(vm.Type)
			if err != nil {
				return VC{}, err
			}
			keyType = kt
			cryptosuite = crypto.Cryptosuite(kt)
		}
	}

	proof := Proof{
		Type:               "DataIntegrityProof",
		Cryptosuite:        cryptosuite,
		Created:            time.Now().UTC().Format(time.RFC3339),
		VerificationMethod: verificationMethod,
		ProofPurpose:       "assertionMethod",
	}

	digest, err := canonicalDigest(vc, proof)
	if err != nil {
		return VC{}, err
	}

	signer, err := crypto.ForType(keyType)
	if err != nil {
		return VC{}, err
	}

	sig, err := signer.Sign(digest, privateKeyMultibase)
	if err != nil {
		return VC{}, err
	}

	proofValue, err := encoding.MultibaseEncode(sig, encoding.Base64URLNoPad)
	if err != nil {
		return VC{}, err
	}
	proof.ProofValue = proofValue

	out := vc
	out.Proof = &proof
	return out, nil
}
