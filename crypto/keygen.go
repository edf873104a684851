package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	stded25519 "crypto/ed25519"
	"crypto/rand"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	blst "github.com/supranational/blst/bindings/go"

	"github.com/onionoriginals/originals/encoding"
	"github.com/onionoriginals/originals/errors"
)

// KeyPair is a freshly generated multibase-encoded key pair.
type KeyPair struct {
	KeyType             KeyType
	PrivateKeyMultibase string
	PublicKeyMultibase  string
}

// GenerateKeyPair produces a fresh key pair for kt, multibase-encoded with
// the multikey header appropriate to kt where one is defined (Ed25519,
// secp256k1); P-256 and BLS keys are multibase-wrapped without a multikey
// header since §4.1 only defines multicodec headers for those two types.
func GenerateKeyPair(kt KeyType) (KeyPair, error) {
	switch kt {
	case KeyTypeES256K:
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "secp256k1 key generation failed", err)
		}
		privMB, err := encoding.MultibaseEncode(priv.Serialize(), encoding.Base58BTC)
		if err != nil {
			return KeyPair{}, err
		}
		pubMB, err := encoding.MultikeyEncode(encoding.HeaderSecp256k1Pub, priv.PubKey().SerializeCompressed())
		if err != nil {
			return KeyPair{}, err
		}
		return KeyPair{kt, privMB, pubMB}, nil

	case KeyTypeEd25519:
		pub, priv, err := stded25519.GenerateKey(rand.Reader)
		if err != nil {
			return KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "ed25519 key generation failed", err)
		}
		seed := priv.Seed()
		privMB, err := encoding.MultibaseEncode(seed, encoding.Base58BTC)
		if err != nil {
			return KeyPair{}, err
		}
		pubMB, err := encoding.MultikeyEncode(encoding.HeaderEd25519Pub, pub)
		if err != nil {
			return KeyPair{}, err
		}
		return KeyPair{kt, privMB, pubMB}, nil

	case KeyTypeES256:
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			return KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "p-256 key generation failed", err)
		}
		privBytes := make([]byte, p256CoordSize)
		priv.D.FillBytes(privBytes)
		privMB, err := encoding.MultibaseEncode(privBytes, encoding.Base58BTC)
		if err != nil {
			return KeyPair{}, err
		}
		pubBytes := elliptic.Marshal(elliptic.P256(), priv.X, priv.Y)
		pubMB, err := encoding.MultibaseEncode(pubBytes, encoding.Base58BTC)
		if err != nil {
			return KeyPair{}, err
		}
		return KeyPair{kt, privMB, pubMB}, nil

	case KeyTypeBLS12381G2:
		var ikm [32]byte
		if _, err := rand.Read(ikm[:]); err != nil {
			return KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "bls12-381 key generation failed", err)
		}
		sk := blst.KeyGen(ikm[:])
		pub := new(blst.P1Affine).From(sk)
		privMB, err := encoding.MultibaseEncode(sk.Serialize(), encoding.Base58BTC)
		if err != nil {
			return KeyPair{}, err
		}
		pubMB, err := encoding.MultibaseEncode(pub.Compress(), encoding.Base58BTC)
		if err != nil {
			return KeyPair{}, err
		}
		return KeyPair{kt, privMB, pubMB}, nil

	default:
		return KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "unsupported key type: %s", string(kt))
	}
}

// VerificationMethodType returns the DID verification-method `type` value
// conventionally associated with kt.
func VerificationMethodType(kt KeyType) string {
	switch kt {
	case KeyTypeES256K:
		return "EcdsaSecp256k1VerificationKey2019"
	case KeyTypeEd25519:
		return "Multikey"
	case KeyTypeES256:
		return "JsonWebKey2020"
	case KeyTypeBLS12381G2:
		return "Bls12381G2Key2020"
	default:
		return "Multikey"
	}
}

// KeyTypeFromVerificationMethodType is the reverse of VerificationMethodType,
// used by the credential manager to pick a cryptosuite when a verification
// method is resolved from a DID document rather than supplied directly.
func KeyTypeFromVerificationMethodType(vmType string) (KeyType, error) {
	switch vmType {
	case "EcdsaSecp256k1VerificationKey2019":
		return KeyTypeES256K, nil
	case "Ed25519VerificationKey2020", "Multikey":
		return KeyTypeEd25519, nil
	case "JsonWebKey2020":
		return KeyTypeES256, nil
	case "Bls12381G2Key2020":
		return KeyTypeBLS12381G2, nil
	default:
		return "", errors.New(errors.ERR_INVALID_INPUT, "unrecognized verification method type: %s", vmType)
	}
}
