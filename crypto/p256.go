package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/onionoriginals/originals/errors"
)

// P256Signer implements ES256: ECDSA over the P-256 curve with SHA-256,
// fixed-size 64-byte (r||s) signatures and uncompressed (0x04||X||Y) public
// keys.
type P256Signer struct{}

func (P256Signer) KeyType() KeyType { return KeyTypeES256 }

const p256CoordSize = 32

func (P256Signer) Sign(message []byte, privateKeyMultibase string) ([]byte, error) {
	raw, err := decodePrivateKey(privateKeyMultibase)
	if err != nil {
		return nil, err
	}
	if len(raw) != p256CoordSize {
		return nil, errors.New(errors.ERR_INVALID_KEY_LENGTH, "p-256 private key must be 32 bytes, got %d", len(raw))
	}

	curve := elliptic.P256()
	priv := new(ecdsa.PrivateKey)
	priv.Curve = curve
	priv.D = new(big.Int).SetBytes(raw)
	priv.PublicKey.X, priv.PublicKey.Y = curve.ScalarBaseMult(raw)

	digest := sha256.Sum256(message)
	r, s, err := ecdsa.Sign(rand.Reader, priv, digest[:])
	if err != nil {
		return nil, errors.New(errors.ERR_INVALID_INPUT, "p-256 signing failed", err)
	}

	sig := make([]byte, 2*p256CoordSize)
	r.FillBytes(sig[:p256CoordSize])
	s.FillBytes(sig[p256CoordSize:])
	return sig, nil
}

func (P256Signer) Verify(message, signature []byte, publicKeyMultibase string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	raw, decoded := decodePublicKey(publicKeyMultibase)
	if !decoded {
		return false
	}
	if len(signature) != 2*p256CoordSize {
		return false
	}

	curve := elliptic.P256()
	var x, y *big.Int
	switch {
	case len(raw) == 2*p256CoordSize+1 && raw[0] == 0x04:
		x = new(big.Int).SetBytes(raw[1 : 1+p256CoordSize])
		y = new(big.Int).SetBytes(raw[1+p256CoordSize:])
	default:
		return false
	}

	if !curve.IsOnCurve(x, y) {
		return false
	}

	pub := &ecdsa.PublicKey{Curve: curve, X: x, Y: y}
	digest := sha256.Sum256(message)

	r := new(big.Int).SetBytes(signature[:p256CoordSize])
	s := new(big.Int).SetBytes(signature[p256CoordSize:])

	return ecdsa.Verify(pub, digest[:], r, s)
}
