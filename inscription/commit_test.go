package inscription

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/originals/bitcoinnet"
	"github.com/onionoriginals/originals/errors"
)

func TestBuildCommitHappyPath(t *testing.T) {
	req := CommitRequest{
		Content:     []byte("hello"),
		ContentType: "text/plain",
		UTXOs:       []UTXO{validUTXO(100_000)},
		FeeRate:     5,
		Network:     bitcoinnet.Regtest,
	}

	result, err := BuildCommit(req)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.CommitAmount, int64(DustLimit))
	assert.Len(t, result.SelectedUtxos, 1)
	assert.NotEmpty(t, result.CommitAddress)
	assert.NotEmpty(t, result.CommitPsbtBase64)
	assert.NotEmpty(t, result.RevealPrivateKey)
	assert.NotEmpty(t, result.RevealPublicKey)
	assert.NotEmpty(t, result.InscriptionScript.Script)
	assert.NotEmpty(t, result.InscriptionScript.ControlBlock)
	assert.True(t, bytes.Contains(result.InscriptionScript.Script, ordProtocolID))
}

func TestBuildCommitInsufficientFunds(t *testing.T) {
	req := CommitRequest{
		Content:     bytes.Repeat([]byte("x"), 1024),
		ContentType: "application/octet-stream",
		UTXOs:       []UTXO{{TxID: validUTXO(0).TxID, Vout: 0, Value: 500, ScriptPubKey: []byte{0x51}}},
		FeeRate:     10,
		Network:     bitcoinnet.Regtest,
	}

	_, err := BuildCommit(req)
	require.Error(t, err)

	var structured *errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, errors.ERR_INSUFFICIENT_FUNDS, structured.Code)
}

func TestBuildCommitRejectsExcessiveFeeRate(t *testing.T) {
	req := CommitRequest{
		Content:     []byte("hello"),
		ContentType: "text/plain",
		UTXOs:       []UTXO{validUTXO(100_000)},
		FeeRate:     20_000,
		Network:     bitcoinnet.Regtest,
	}

	_, err := BuildCommit(req)
	require.Error(t, err)

	var structured *errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, errors.ERR_INVALID_INPUT, structured.Code)
}
