package did

import (
	"crypto/sha256"
	"strings"

	"github.com/onionoriginals/originals/crypto"
	"github.com/onionoriginals/originals/encoding"
	"github.com/onionoriginals/originals/errors"
)

// ResourceHash is the minimal shape the DID manager needs from a resource
// to derive a did:peer identifier: its content hash, hex-encoded.
type ResourceHash struct {
	Hash string
}

// CreateDidPeer builds a peer DID (§4.4) whose identifier is derived from
// the concatenation of resource hashes plus a freshly generated key of
// defaultKeyType. The returned document has one verification method,
// referenced by both authentication and assertionMethod.
func CreateDidPeer(resources []ResourceHash, defaultKeyType crypto.KeyType) (Document, crypto.KeyPair, error) {
	if len(resources) == 0 {
		return Document{}, crypto.KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "cannot create a did:peer with zero resources")
	}

	keyPair, err := crypto.GenerateKeyPair(defaultKeyType)
	if err != nil {
		return Document{}, crypto.KeyPair{}, err
	}

	var concatenated strings.Builder
	for _, r := range resources {
		concatenated.WriteString(r.Hash)
	}
	concatenated.WriteString(keyPair.PublicKeyMultibase)

	digest := sha256.Sum256([]byte(concatenated.String()))
	idSuffix, err := encoding.MultibaseEncode(digest[:], encoding.Base58BTC)
	if err != nil {
		return Document{}, crypto.KeyPair{}, err
	}

	didID := "did:peer:" + idSuffix
	keyID := didID + "#key-0"

	doc := Document{
		Context: []string{ContextDIDv1},
		ID:      didID,
		VerificationMethod: []VerificationMethod{{
			ID:                 keyID,
			Type:               crypto.VerificationMethodType(defaultKeyType),
			Controller:         didID,
			PublicKeyMultibase: keyPair.PublicKeyMultibase,
		}},
		Authentication:  []string{keyID},
		AssertionMethod: []string{keyID},
	}

	return doc, keyPair, nil
}
