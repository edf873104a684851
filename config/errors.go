package config

import (
	"github.com/onionoriginals/originals/bitcoinnet"
	"github.com/onionoriginals/originals/errors"
)

func unsupportedWebVHNetwork(w WebVHNetwork) error {
	return errors.New(errors.ERR_INVALID_INPUT, "unsupported webvhNetwork: %s", string(w))
}

func networkMismatch(w WebVHNetwork, mapped, configured bitcoinnet.Network) error {
	return errors.New(errors.ERR_INVALID_INPUT,
		"webvhNetwork %s maps to bitcoin network %s, but network is configured as %s", string(w), string(mapped), string(configured))
}
