package bitcoinnet

import (
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/onionoriginals/originals/errors"
)

var mockOrTestPrefix = regexp.MustCompile(`^(mock-|test-)`)

// ValidateBitcoinAddress validates bech32/base58check format and checksum
// for network, rejecting mock/test placeholders and out-of-range lengths
// before attempting a full decode.
func ValidateBitcoinAddress(addr string, network Network) error {
	if len(addr) < 26 || len(addr) > 90 {
		return errors.New(errors.ERR_INVALID_ADDRESS, "address length %d out of range [26,90]", len(addr))
	}
	if mockOrTestPrefix.MatchString(addr) {
		return errors.New(errors.ERR_INVALID_ADDRESS, "address %q matches disallowed mock-/test- placeholder pattern", addr)
	}

	params, err := Params(network)
	if err != nil {
		return err
	}

	if strings.Contains(addr, "1") && looksBech32(addr) {
		allowed := BechPrefixes(network)
		ok := false
		for _, hrp := range allowed {
			if strings.HasPrefix(addr, hrp+"1") {
				ok = true
				break
			}
		}
		if !ok {
			return errors.New(errors.ERR_INVALID_ADDRESS, "bech32 address %q has unexpected prefix for network %s", addr, network)
		}
	}

	if _, err := btcutil.DecodeAddress(addr, params); err != nil {
		return errors.New(errors.ERR_INVALID_ADDRESS, "address %q failed to decode for network %s", addr, network, err)
	}

	return nil
}

func looksBech32(addr string) bool {
	lower := strings.ToLower(addr)
	return strings.HasPrefix(lower, "bc1") || strings.HasPrefix(lower, "tb1") || strings.HasPrefix(lower, "bcrt1")
}
