package inscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUtxosHappyPath(t *testing.T) {
	utxos := []UTXO{validUTXO(100_000)}
	result, err := selectUtxos(utxos, DustLimit, 5)
	require.NoError(t, err)
	assert.Len(t, result.selected, 1)
	assert.GreaterOrEqual(t, result.total, DustLimit+result.fee)
}

func TestSelectUtxosInsufficientFunds(t *testing.T) {
	utxos := []UTXO{validUTXO(500)}
	_, err := selectUtxos(utxos, DustLimit, 10)
	require.Error(t, err)
}

func TestSelectUtxosPicksSmallestFirst(t *testing.T) {
	utxos := []UTXO{validUTXO(50_000), validUTXO(1_000), validUTXO(2_000)}
	result, err := selectUtxos(utxos, DustLimit, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000), result.selected[0].Value)
}

func TestSelectUtxosDropsDustChangeToFee(t *testing.T) {
	// A single UTXO just barely above commitAmount+fee leaves dust change;
	// the 1-output fee recompute should absorb it rather than emit it.
	utxos := []UTXO{validUTXO(DustLimit + 600)}
	result, err := selectUtxos(utxos, DustLimit, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.change)
}
