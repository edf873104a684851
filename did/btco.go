package did

import (
	"github.com/onionoriginals/originals/bitcoinnet"
)

// MigrateToDidBtco rewrites source into a did:btco[:test|:sig]:<sat> document.
func MigrateToDidBtco(source Document, satoshi uint64, network bitcoinnet.SatoshiNetwork) (Document, error) {
	newID := bitcoinnet.FormatSatoshiIdentifier(satoshi, network)
	return rekeyDocument(source, newID), nil
}
