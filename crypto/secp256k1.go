package crypto

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/onionoriginals/originals/encoding"
	"github.com/onionoriginals/originals/errors"
)

// Secp256k1Signer implements ES256K: ECDSA over SHA-256, 64-byte compact
// signatures, 33-byte compressed public keys (a multikey secp256k1-pub
// header, or else an optional leading version byte, is stripped before
// parsing).
type Secp256k1Signer struct{}

func (Secp256k1Signer) KeyType() KeyType { return KeyTypeES256K }

func (Secp256k1Signer) Sign(message []byte, privateKeyMultibase string) ([]byte, error) {
	raw, err := decodePrivateKey(privateKeyMultibase)
	if err != nil {
		return nil, err
	}
	if len(raw) != 32 {
		return nil, errors.New(errors.ERR_INVALID_KEY_LENGTH, "secp256k1 private key must be 32 bytes, got %d", len(raw))
	}

	priv := secp256k1.PrivKeyFromBytes(raw)
	digest := sha256.Sum256(message)

	// SignCompact returns 65 bytes: 1 recovery byte + 64 bytes (R || S).
	// The spec's wire format is the bare 64-byte compact signature.
	compact := ecdsa.SignCompact(priv, digest[:], false)
	return compact[1:], nil
}

func (Secp256k1Signer) Verify(message, signature []byte, publicKeyMultibase string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	raw, decoded := decodePublicKey(publicKeyMultibase)
	if !decoded {
		return false
	}

	pubBytes := raw
	if key, err := encoding.MultikeyDecode(encoding.HeaderSecp256k1Pub, publicKeyMultibase); err == nil && len(key) == 33 {
		pubBytes = key
	} else if len(pubBytes) == 34 {
		pubBytes = pubBytes[1:] // strip optional leading version byte
	}
	if len(pubBytes) != 33 {
		return false
	}
	if len(signature) != 64 {
		return false
	}

	pub, err := secp256k1.ParsePubKey(pubBytes)
	if err != nil {
		return false
	}

	r := new(secp256k1.ModNScalar)
	s := new(secp256k1.ModNScalar)
	if r.SetByteSlice(signature[:32]) {
		return false // overflow
	}
	if s.SetByteSlice(signature[32:]) {
		return false
	}

	sig := ecdsa.NewSignature(r, s)
	digest := sha256.Sum256(message)
	return sig.Verify(digest[:], pub)
}
