package credential

import (
	"context"

	"github.com/onionoriginals/originals/crypto"
	"github.com/onionoriginals/originals/encoding"
)

// VerifyCredential recomputes the canonical digest and verifies vc.Proof
// against the resolved public key (§4.6). Any failure at any step — bad
// encoding, unresolved verification method, cryptographic mismatch —
// returns false; this function never returns an error.
func VerifyCredential(ctx context.Context, vc VC, resolver VerificationMethodResolver) bool {
	if vc.Proof == nil {
		return false
	}
	proof := *vc.Proof

	digest, err := canonicalDigest(vc, proof)
	if err != nil {
		return false
	}

	sig, enc, err := encoding.MultibaseDecode(proof.ProofValue)
	if err != nil || enc != encoding.Base64URLNoPad {
		return false
	}

	publicKeyMultibase, keyType, ok := resolvePublicKey(ctx, proof, resolver)
	if !ok {
		return false
	}

	signer, err := crypto.ForType(keyType)
	if err != nil {
		return false
	}

	return signer.Verify(digest, sig, publicKeyMultibase)
}

// resolvePublicKey implements both code paths of §4.6 verification: an
// inline publicKeyMultibase on the proof (the unstructured fallback), or a
// DID URL verificationMethod resolved via resolver (the structured path
// used when the proof carries a cryptosuite tag). Without a cryptosuite, an
// inline key's type is read from its multikey header, so only Ed25519 and
// secp256k1 inline keys verify that way.
func resolvePublicKey(ctx context.Context, proof Proof, resolver VerificationMethodResolver) (string, crypto.KeyType, bool) {
	if proof.PublicKeyMultibase != "" {
		kt := keyTypeFromCryptosuite(proof.Cryptosuite)
		if kt == "" && proof.Cryptosuite == "" {
			if _, err := encoding.MultikeyDecode(encoding.HeaderEd25519Pub, proof.PublicKeyMultibase); err == nil {
				kt = crypto.KeyTypeEd25519
			} else if _, err := encoding.MultikeyDecode(encoding.HeaderSecp256k1Pub, proof.PublicKeyMultibase); err == nil {
				kt = crypto.KeyTypeES256K
			}
		}
		if kt == "" {
			return "", "", false
		}
		return proof.PublicKeyMultibase, kt, true
	}

	if resolver == nil || proof.VerificationMethod == "" {
		return "", "", false
	}

	vm, err := resolver.ResolveVerificationMethod(ctx, proof.VerificationMethod)
	if err != nil {
		return "", "", false
	}

	kt, err := crypto.KeyTypeFromVerificationMethodType(vm.Type)
	if err != nil {
		return "", "", false
	}

	return vm.PublicKeyMultibase, kt, true
}

func keyTypeFromCryptosuite(suite string) crypto.KeyType {
	switch suite {
	case "ecdsa-secp256k1-2019":
		return crypto.KeyTypeES256K
	case "eddsa-2022":
		return crypto.KeyTypeEd25519
	case "ecdsa-p256-2019":
		return crypto.KeyTypeES256
	case "bbs-2023":
		return crypto.KeyTypeBLS12381G2
	default:
		return ""
	}
}
