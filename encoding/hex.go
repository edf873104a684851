// Package encoding provides the codecs of §4.1: hex, base58, base64url,
// multibase and multikey. Round-trip invertibility on arbitrary byte
// strings (including empty) is the governing property throughout.
package encoding

import (
	"encoding/hex"
	"strings"

	"github.com/onionoriginals/originals/errors"
)

// HexToBytes decodes a hex string, accepting an optional "0x" prefix.
// Odd-length input and non-hex characters are rejected.
func HexToBytes(s string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(trimmed)%2 != 0 {
		return nil, errors.New(errors.ERR_INVALID_INPUT, "hex string has odd length: %d", len(trimmed))
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, errors.New(errors.ERR_INVALID_INPUT, "invalid hex string", err)
	}
	return b, nil
}

// BytesToHex encodes bytes as lowercase hex without a prefix.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
