package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/originals/bitcoinnet"
)

func TestBitcoinNetworkForMapsAllTiers(t *testing.T) {
	n, err := BitcoinNetworkFor(WebVHDev)
	require.NoError(t, err)
	assert.Equal(t, bitcoinnet.Regtest, n)

	n, err = BitcoinNetworkFor(WebVHStaging)
	require.NoError(t, err)
	assert.Equal(t, bitcoinnet.Signet, n)

	n, err = BitcoinNetworkFor(WebVHProd)
	require.NoError(t, err)
	assert.Equal(t, bitcoinnet.Mainnet, n)
}

func TestBitcoinNetworkForRejectsUnknownTier(t *testing.T) {
	_, err := BitcoinNetworkFor(WebVHNetwork("bogus"))
	assert.Error(t, err)
}

func TestValidateAcceptsMatchingNetworkAndTier(t *testing.T) {
	cfg := OriginalsConfig{Network: bitcoinnet.Regtest, WebVHNetwork: WebVHDev}
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsMismatchedNetworkAndTier(t *testing.T) {
	cfg := OriginalsConfig{Network: bitcoinnet.Mainnet, WebVHNetwork: WebVHDev}
	assert.Error(t, cfg.Validate())
}

func TestValidateAllowsEmptyWebVHNetwork(t *testing.T) {
	cfg := OriginalsConfig{Network: bitcoinnet.Mainnet}
	assert.NoError(t, cfg.Validate())
}

func TestValidateSemverForTierProdRequiresExactMajor(t *testing.T) {
	assert.NoError(t, ValidateSemverForTier("1.0.0", WebVHProd))
	assert.Error(t, ValidateSemverForTier("1.1.0", WebVHProd))
	assert.Error(t, ValidateSemverForTier("1.0.1", WebVHProd))
}

func TestValidateSemverForTierStagingAllowsMinorNotPatch(t *testing.T) {
	assert.NoError(t, ValidateSemverForTier("1.2.0", WebVHStaging))
	assert.Error(t, ValidateSemverForTier("1.2.3", WebVHStaging))
}

func TestValidateSemverForTierDevAllowsAny(t *testing.T) {
	assert.NoError(t, ValidateSemverForTier("1.2.3", WebVHDev))
}

func TestValidateSemverForTierRejectsMalformed(t *testing.T) {
	assert.Error(t, ValidateSemverForTier("1.2", WebVHDev))
	assert.Error(t, ValidateSemverForTier("a.b.c", WebVHDev))
}
