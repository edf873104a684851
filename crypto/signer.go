// Package crypto implements the polymorphic signer of §4.2: a sealed set of
// four algorithms (secp256k1/ES256K, Ed25519, P-256/ES256, BLS12-381 G2)
// behind one Signer interface, with the configured default selected at
// construction (§9 "polymorphic signers -> trait + variant enum").
package crypto

import (
	"github.com/onionoriginals/originals/encoding"
	"github.com/onionoriginals/originals/errors"
)

// KeyType enumerates the supported signature algorithms.
type KeyType string

const (
	KeyTypeES256K     KeyType = "ES256K"    // secp256k1 + ECDSA/SHA-256
	KeyTypeEd25519    KeyType = "Ed25519"   // pure Ed25519
	KeyTypeES256      KeyType = "ES256"     // P-256 + ECDSA/SHA-256
	KeyTypeBLS12381G2 KeyType = "BLS12381G2" // BBS-style selective disclosure primitives
)

// Signer is implemented by each of the four sealed variants.
type Signer interface {
	KeyType() KeyType
	// Sign returns the raw signature bytes for message, given the
	// multibase-encoded private key.
	Sign(message []byte, privateKeyMultibase string) ([]byte, error)
	// Verify never returns an error: any failure (bad encoding, bad
	// length, cryptographic mismatch, or internal panic) becomes false.
	Verify(message, signature []byte, publicKeyMultibase string) bool
}

// Cryptosuite returns the Data Integrity cryptosuite tag associated with kt.
func Cryptosuite(kt KeyType) string {
	switch kt {
	case KeyTypeES256K:
		return "ecdsa-secp256k1-2019"
	case KeyTypeEd25519:
		return "eddsa-2022"
	case KeyTypeES256:
		return "ecdsa-p256-2019"
	case KeyTypeBLS12381G2:
		return "bbs-2023"
	default:
		return ""
	}
}

// ForType returns the Signer implementation for kt.
func ForType(kt KeyType) (Signer, error) {
	switch kt {
	case KeyTypeES256K:
		return Secp256k1Signer{}, nil
	case KeyTypeEd25519:
		return Ed25519Signer{}, nil
	case KeyTypeES256:
		return P256Signer{}, nil
	case KeyTypeBLS12381G2:
		return BLS12381Signer{}, nil
	default:
		return nil, errors.New(errors.ERR_INVALID_INPUT, "unsupported key type: %s", string(kt))
	}
}

// decodePrivateKey strips the multibase 'z' prefix shared by all four
// variants' private key encodings, failing with ERR_INVALID_KEY_ENCODING
// when the prefix is anything else.
func decodePrivateKey(privateKeyMultibase string) ([]byte, error) {
	if privateKeyMultibase == "" || privateKeyMultibase[0] != 'z' {
		return nil, errors.New(errors.ERR_INVALID_KEY_ENCODING, "private key must use multibase prefix 'z'")
	}
	b, _, err := encoding.MultibaseDecode(privateKeyMultibase)
	if err != nil {
		return nil, errors.New(errors.ERR_INVALID_KEY_ENCODING, "invalid private key encoding", err)
	}
	return b, nil
}

func decodePublicKey(publicKeyMultibase string) ([]byte, bool) {
	if publicKeyMultibase == "" || publicKeyMultibase[0] != 'z' {
		return nil, false
	}
	b, _, err := encoding.MultibaseDecode(publicKeyMultibase)
	if err != nil {
		return nil, false
	}
	return b, true
}
