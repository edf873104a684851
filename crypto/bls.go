package crypto

import (
	blst "github.com/supranational/blst/bindings/go"

	"github.com/onionoriginals/originals/errors"
)

// dst is the BLS signature domain separation tag for this engine's use of
// the min-pk variant (G1 public keys, G2 signatures).
var dst = []byte("ORIGINALS-SDK-BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_")

const (
	blsSecretKeySize = 32
	blsPublicKeySize = 48 // compressed G1
	blsSignatureSize = 96 // compressed G2
)

// BLS12381Signer implements the BLS12-381 G2 variant used only as the
// underlying primitive for BBS-style selective-disclosure credentials
// (§4.2, §9 Open Questions: full BBS proof generation is out of scope; this
// signer supplies sign/verify plus the envelope round-trip of bbs.go).
type BLS12381Signer struct{}

func (BLS12381Signer) KeyType() KeyType { return KeyTypeBLS12381G2 }

func (BLS12381Signer) Sign(message []byte, privateKeyMultibase string) ([]byte, error) {
	raw, err := decodePrivateKey(privateKeyMultibase)
	if err != nil {
		return nil, err
	}
	if len(raw) != blsSecretKeySize {
		return nil, errors.New(errors.ERR_INVALID_KEY_LENGTH, "bls12-381 private key must be 32 bytes, got %d", len(raw))
	}

	var sk blst.SecretKey
	sk.Deserialize(raw)

	sig := new(blst.P2Affine).Sign(&sk, message, dst)
	return sig.Compress(), nil
}

func (BLS12381Signer) Verify(message, signature []byte, publicKeyMultibase string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	raw, decoded := decodePublicKey(publicKeyMultibase)
	if !decoded || len(raw) != blsPublicKeySize {
		return false
	}
	if len(signature) != blsSignatureSize {
		return false
	}

	pub := new(blst.P1Affine).Uncompress(raw)
	if pub == nil {
		return false
	}
	sig := new(blst.P2Affine).Uncompress(signature)
	if sig == nil {
		return false
	}

	return sig.Verify(true, pub, true, message, dst)
}
