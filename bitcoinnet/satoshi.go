package bitcoinnet

import (
	"strconv"
	"strings"

	"github.com/onionoriginals/originals/errors"
)

func unsupportedNetwork(network Network) error {
	return errors.New(errors.ERR_INVALID_INPUT, "unsupported network: %s", string(network))
}

// ValidateSatoshi accepts a non-empty decimal integer string in
// [0, MaxSupply], rejecting decimals, scientific notation, negatives,
// non-digit characters, and whitespace-only strings.
func ValidateSatoshi(v string) (uint64, error) {
	if v == "" {
		return 0, errors.New(errors.ERR_INVALID_SATOSHI, "satoshi value is empty")
	}
	if strings.TrimSpace(v) != v || strings.TrimSpace(v) == "" {
		return 0, errors.New(errors.ERR_INVALID_SATOSHI, "satoshi value has leading/trailing whitespace or is blank")
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0, errors.New(errors.ERR_INVALID_SATOSHI, "satoshi value must be a plain non-negative decimal integer, got %q", v)
		}
	}
	// reject leading-zero forms longer than "0" itself, mirroring strict
	// decimal-integer parsing; "0" alone is valid.
	if len(v) > 1 && v[0] == '0' {
		return 0, errors.New(errors.ERR_INVALID_SATOSHI, "satoshi value must not have leading zeros: %q", v)
	}

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.New(errors.ERR_INVALID_SATOSHI, "satoshi value out of range: %q", v, err)
	}
	if n > MaxSupply {
		return 0, errors.New(errors.ERR_INVALID_SATOSHI, "satoshi value %d exceeds max supply %d", n, MaxSupply)
	}
	return n, nil
}

// SatoshiNetwork is the did:btco network token embedded in a satoshi identifier.
type SatoshiNetwork string

const (
	SatMainnet SatoshiNetwork = ""     // did:btco:<sat>
	SatTest    SatoshiNetwork = "test" // did:btco:test:<sat>
	SatSig     SatoshiNetwork = "sig"  // did:btco:sig:<sat>
)

// ParseSatoshiIdentifier accepts either a plain satoshi integer or a
// did:btco identifier in one of its three network shapes.
func ParseSatoshiIdentifier(s string) (uint64, SatoshiNetwork, error) {
	if !strings.HasPrefix(s, "did:btco:") {
		n, err := ValidateSatoshi(s)
		return n, SatMainnet, err
	}

	rest := strings.TrimPrefix(s, "did:btco:")
	parts := strings.Split(rest, ":")

	switch len(parts) {
	case 1:
		n, err := ValidateSatoshi(parts[0])
		return n, SatMainnet, err
	case 2:
		net := SatoshiNetwork(parts[0])
		if net != SatTest && net != SatSig {
			return 0, "", errors.New(errors.ERR_INVALID_DID_FORMAT, "unknown did:btco network token %q", parts[0])
		}
		n, err := ValidateSatoshi(parts[1])
		return n, net, err
	default:
		return 0, "", errors.New(errors.ERR_INVALID_DID_FORMAT, "malformed did:btco identifier %q", s)
	}
}

// FormatSatoshiIdentifier is a right inverse of ParseSatoshiIdentifier for
// the three supported did:btco shapes.
func FormatSatoshiIdentifier(sat uint64, net SatoshiNetwork) string {
	n := strconv.FormatUint(sat, 10)
	if net == SatMainnet {
		return "did:btco:" + n
	}
	return "did:btco:" + string(net) + ":" + n
}
