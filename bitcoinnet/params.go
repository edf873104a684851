// Package bitcoinnet provides network parameters and the satoshi/address
// validation of §4.3, adapted from the teacher's chaincfg conventions
// (pkg/go-chaincfg/params.go) down to the handful of fields this engine
// actually needs: bech32 HRPs and base58 version bytes per network.
package bitcoinnet

import "github.com/btcsuite/btcd/chaincfg"

// Network identifies one of the three networks this engine operates against.
type Network string

const (
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

// MaxSupply is the total satoshi supply bound (2.1 x 10^15).
const MaxSupply uint64 = 2_100_000_000_000_000

// Params returns the btcd chain parameters backing addr validation and
// Taproot output derivation for network.
func Params(network Network) (*chaincfg.Params, error) {
	switch network {
	case Mainnet:
		return &chaincfg.MainNetParams, nil
	case Regtest:
		return &chaincfg.RegressionNetParams, nil
	case Signet:
		return &chaincfg.SigNetParams, nil
	default:
		return nil, unsupportedNetwork(network)
	}
}

// BechPrefixes returns the bech32 HRPs accepted for network. Regtest
// additionally accepts the testnet prefix per §4.3.
func BechPrefixes(network Network) []string {
	switch network {
	case Mainnet:
		return []string{"bc"}
	case Signet:
		return []string{"tb"}
	case Regtest:
		return []string{"bcrt", "tb"}
	default:
		return nil
	}
}
