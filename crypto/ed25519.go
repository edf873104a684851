package crypto

import (
	stded25519 "crypto/ed25519"

	"github.com/onionoriginals/originals/encoding"
	"github.com/onionoriginals/originals/errors"
)

// Ed25519Signer implements pure Ed25519 (no pre-hash). A multikey-encoded
// key has its 2-byte ed25519-pub header removed first. 32-byte public keys
// verify directly; 33-byte keys verify after discarding the leading byte;
// any other length fails.
type Ed25519Signer struct{}

func (Ed25519Signer) KeyType() KeyType { return KeyTypeEd25519 }

func (Ed25519Signer) Sign(message []byte, privateKeyMultibase string) ([]byte, error) {
	raw, err := decodePrivateKey(privateKeyMultibase)
	if err != nil {
		return nil, err
	}

	var seed []byte
	switch len(raw) {
	case stded25519.SeedSize: // 32
		seed = raw
	case stded25519.PrivateKeySize: // 64, already seed||pub
		return stded25519.Sign(stded25519.PrivateKey(raw), message), nil
	default:
		return nil, errors.New(errors.ERR_INVALID_KEY_LENGTH, "ed25519 private key must be 32 or 64 bytes, got %d", len(raw))
	}

	priv := stded25519.NewKeyFromSeed(seed)
	return stded25519.Sign(priv, message), nil
}

func (Ed25519Signer) Verify(message, signature []byte, publicKeyMultibase string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	raw, decoded := decodePublicKey(publicKeyMultibase)
	if !decoded {
		return false
	}
	if key, err := encoding.MultikeyDecode(encoding.HeaderEd25519Pub, publicKeyMultibase); err == nil && len(key) == stded25519.PublicKeySize {
		raw = key
	}

	var pub []byte
	switch len(raw) {
	case stded25519.PublicKeySize: // 32
		pub = raw
	case stded25519.PublicKeySize + 1: // 33, leading version byte
		pub = raw[1:]
	default:
		return false
	}

	if len(signature) != stded25519.SignatureSize {
		return false
	}

	return stded25519.Verify(stded25519.PublicKey(pub), message, signature)
}
