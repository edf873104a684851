package encoding

import (
	mb "github.com/multiformats/go-multibase"

	"github.com/onionoriginals/originals/errors"
)

// MultibaseEncoding names the two encodings this engine emits: base58-btc
// (prefix 'z') and base64url-nopad (prefix 'u').
type MultibaseEncoding string

const (
	Base58BTC       MultibaseEncoding = "base58btc"
	Base64URLNoPad  MultibaseEncoding = "base64url"
)

func toLibEncoding(enc MultibaseEncoding) (mb.Encoding, error) {
	switch enc {
	case Base58BTC:
		return mb.Base58BTC, nil
	case Base64URLNoPad:
		return mb.Base64url, nil
	default:
		return 0, errors.New(errors.ERR_INVALID_INPUT, "unsupported multibase encoding: %s", string(enc))
	}
}

// MultibaseEncode prepends the self-describing multibase prefix ('z' for
// base58-btc, 'u' for base64url-nopad) to the encoded bytes.
func MultibaseEncode(data []byte, enc MultibaseEncoding) (string, error) {
	libEnc, err := toLibEncoding(enc)
	if err != nil {
		return "", err
	}
	s, err := mb.Encode(libEnc, data)
	if err != nil {
		return "", errors.New(errors.ERR_INVALID_INPUT, "multibase encode failed", err)
	}
	return s, nil
}

// MultibaseDecode dispatches on the leading character of s.
func MultibaseDecode(s string) ([]byte, MultibaseEncoding, error) {
	if s == "" {
		return nil, "", errors.New(errors.ERR_INVALID_INPUT, "empty multibase string")
	}
	if s == "z" {
		return []byte{}, Base58BTC, nil // base58-btc encoding of zero bytes
	}

	libEnc, data, err := mb.Decode(s)
	if err != nil {
		return nil, "", errors.New(errors.ERR_INVALID_INPUT, "invalid multibase string", err)
	}

	switch libEnc {
	case mb.Base58BTC:
		return data, Base58BTC, nil
	case mb.Base64url:
		return data, Base64URLNoPad, nil
	default:
		return nil, "", errors.New(errors.ERR_INVALID_INPUT, "unsupported multibase prefix: %q", string(s[0]))
	}
}
