package inscription

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// jsonPSBTFallback is the deterministic JSON encoding of §6, used only
// when a real PSBT cannot be assembled (e.g. a malformed txid or address
// that slipped past pre-validation, or test fixtures with synthetic ids).
type jsonPSBTFallback struct {
	Version int              `json:"version"`
	Inputs  []jsonPSBTInput  `json:"inputs"`
	Outputs []jsonPSBTOutput `json:"outputs"`
	Fee     int64            `json:"fee"`
}

type jsonPSBTInput struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

type jsonPSBTOutput struct {
	Address string `json:"address"`
	Value   int64  `json:"value"`
}

// buildCommitPSBT assembles the unsigned commit transaction as a BIP-174
// PSBT and returns its base64 encoding, falling back to the deterministic
// JSON form of §6 if any input or address fails to convert to wire form.
func buildCommitPSBT(utxos []UTXO, commitAddr btcutil.Address, commitAmount int64, changeAddress string, change int64, fee int64, params *chaincfg.Params) string {
	commitAddrStr := commitAddr.EncodeAddress()

	fallback := func() string {
		return jsonPSBTFallbackEncode(utxos, commitAddrStr, commitAmount, changeAddress, change, fee)
	}

	tx := wire.NewMsgTx(2)

	for _, u := range utxos {
		hash, err := chainhash.NewHashFromStr(u.TxID)
		if err != nil {
			return fallback()
		}
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(hash, u.Vout), nil, nil))
	}

	commitScript, err := txscript.PayToAddrScript(commitAddr)
	if err != nil {
		return fallback()
	}
	tx.AddTxOut(wire.NewTxOut(commitAmount, commitScript))

	hasChangeOut := change >= DustLimit && changeAddress != ""
	if hasChangeOut {
		changeAddr, err := btcutil.DecodeAddress(changeAddress, params)
		if err != nil {
			return fallback()
		}
		changeScript, err := txscript.PayToAddrScript(changeAddr)
		if err != nil {
			return fallback()
		}
		tx.AddTxOut(wire.NewTxOut(change, changeScript))
	}

	p, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return fallback()
	}

	for i, u := range utxos {
		p.Inputs[i].WitnessUtxo = wire.NewTxOut(u.Value, u.ScriptPubKey)
	}

	var buf bytes.Buffer
	if err := p.Serialize(&buf); err != nil {
		return fallback()
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func jsonPSBTFallbackEncode(utxos []UTXO, commitAddress string, commitAmount int64, changeAddress string, change int64, fee int64) string {
	fallback := jsonPSBTFallback{Version: 2, Fee: fee}
	for _, u := range utxos {
		fallback.Inputs = append(fallback.Inputs, jsonPSBTInput{TxID: u.TxID, Vout: u.Vout})
	}
	fallback.Outputs = append(fallback.Outputs, jsonPSBTOutput{Address: commitAddress, Value: commitAmount})
	if change >= DustLimit && changeAddress != "" {
		fallback.Outputs = append(fallback.Outputs, jsonPSBTOutput{Address: changeAddress, Value: change})
	}

	raw, _ := json.Marshal(fallback) // fallback is plain data; marshaling cannot fail
	return base64.StdEncoding.EncodeToString(raw)
}
