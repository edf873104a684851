// Package config defines OriginalsConfig (§6), the single struct passed at
// construction to every top-level manager. No package outside config reads
// environment variables or holds process-wide state directly (§9 "global
// state -> dependency injection").
package config

import (
	"github.com/onionoriginals/originals/adapters"
	"github.com/onionoriginals/originals/bitcoinnet"
	"github.com/onionoriginals/originals/crypto"
)

// WebVHNetwork selects the domain tier for published did:webvh assets.
type WebVHNetwork string

const (
	WebVHDev     WebVHNetwork = "magby"  // maps to bitcoinnet.Regtest
	WebVHStaging WebVHNetwork = "cleffa" // maps to bitcoinnet.Signet
	WebVHProd    WebVHNetwork = "pichu"  // maps to bitcoinnet.Mainnet
)

// BitcoinNetworkFor maps a webvh tier to its corresponding Bitcoin network.
func BitcoinNetworkFor(w WebVHNetwork) (bitcoinnet.Network, error) {
	switch w {
	case WebVHDev:
		return bitcoinnet.Regtest, nil
	case WebVHStaging:
		return bitcoinnet.Signet, nil
	case WebVHProd:
		return bitcoinnet.Mainnet, nil
	default:
		return "", unsupportedWebVHNetwork(w)
	}
}

// LoggingConfig configures the engine's logger (AMBIENT STACK).
type LoggingConfig struct {
	Level        string
	Pretty       bool
	EventLogging bool
}

// OriginalsConfig is the single construction-time configuration object
// recognized by every manager in this module (§6).
type OriginalsConfig struct {
	Network        bitcoinnet.Network
	DefaultKeyType crypto.KeyType
	WebVHNetwork   WebVHNetwork
	WebVHDomain    string // the concrete host:port published for this tier

	OrdinalsProvider adapters.OrdinalsProvider
	FeeOracle        adapters.FeeOracle
	StorageAdapter   adapters.StorageAdapter
	KeyStore         adapters.KeyStore
	Witness          adapters.Witness
	Broadcaster      adapters.Broadcaster

	Logging LoggingConfig
}

// Validate checks internal consistency of the config (e.g. webvhNetwork's
// Bitcoin mapping matches Network, when both are set).
func (c OriginalsConfig) Validate() error {
	if c.WebVHNetwork != "" {
		mapped, err := BitcoinNetworkFor(c.WebVHNetwork)
		if err != nil {
			return err
		}
		if c.Network != "" && c.Network != mapped {
			return networkMismatch(c.WebVHNetwork, mapped, c.Network)
		}
	}
	return nil
}
