package encoding

import (
	"encoding/base64"

	"github.com/mr-tron/base58"

	"github.com/onionoriginals/originals/errors"
)

// Base58Encode encodes bytes using the base58-btc alphabet.
func Base58Encode(b []byte) string {
	return base58.Encode(b)
}

// Base58Decode decodes a base58-btc string.
func Base58Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, errors.New(errors.ERR_INVALID_INPUT, "invalid base58 string", err)
	}
	return b, nil
}

// Base64URLNoPadEncode encodes bytes as unpadded base64url, the encoding
// used throughout for multibase 'u' payloads and proofValue material.
func Base64URLNoPadEncode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Base64URLNoPadDecode decodes unpadded base64url.
func Base64URLNoPadDecode(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.New(errors.ERR_INVALID_INPUT, "invalid base64url string", err)
	}
	return b, nil
}

// UTF8ToBytes and BytesToUTF8 round-trip UTF-8 text, including the empty string.
func UTF8ToBytes(s string) []byte { return []byte(s) }
func BytesToUTF8(b []byte) string { return string(b) }
