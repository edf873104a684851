package encoding

import (
	"bytes"

	varint "github.com/multiformats/go-varint"

	"github.com/onionoriginals/originals/errors"
)

// KeyHeader is a multicodec key-type tag. Values are the raw multicodec
// codes for the two key types this engine multikey-encodes; headerBytes
// varint-encodes each into its 2-byte header.
type KeyHeader uint64

const (
	HeaderEd25519Pub   KeyHeader = 0xed // multicodec "ed25519-pub"
	HeaderSecp256k1Pub KeyHeader = 0xe7 // multicodec "secp256k1-pub"
)

func headerBytes(h KeyHeader) []byte {
	return varint.ToUvarint(uint64(h))
}

// MultikeyEncode prepends the 2-byte multicodec header for h to keyBytes
// and multibase-encodes the result as base58-btc (prefix 'z').
func MultikeyEncode(h KeyHeader, keyBytes []byte) (string, error) {
	prefixed := append(append([]byte{}, headerBytes(h)...), keyBytes...)
	return MultibaseEncode(prefixed, Base58BTC)
}

// MultikeyDecode multibase-decodes s and verifies it carries the expected
// header, returning the raw key bytes that follow it.
func MultikeyDecode(h KeyHeader, s string) ([]byte, error) {
	data, enc, err := MultibaseDecode(s)
	if err != nil {
		return nil, err
	}
	if enc != Base58BTC {
		return nil, errors.New(errors.ERR_INVALID_KEY_ENCODING, "multikey must use base58-btc multibase prefix 'z'")
	}

	want := headerBytes(h)
	if len(data) < len(want) || !bytes.Equal(data[:len(want)], want) {
		return nil, errors.New(errors.ERR_INVALID_KEY_ENCODING, "multikey header mismatch: expected codec 0x%x", uint64(h))
	}

	return data[len(want):], nil
}
