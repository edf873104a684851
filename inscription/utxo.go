// Package inscription implements the Bitcoin Inscription Engine of §4.9:
// commit/reveal construction, Taproot script tree, UTXO selection and the
// iterative fee-estimation loop.
package inscription

import "github.com/onionoriginals/originals/errors"

// DustLimit is the minimum economically spendable output value in sats.
const DustLimit int64 = 546

// UTXO is a spendable Bitcoin output (§3).
type UTXO struct {
	TxID         string
	Vout         uint32
	Value        int64
	ScriptPubKey []byte
}

// IsSpendable reports whether all four UTXO fields are well-formed (§3).
func (u UTXO) IsSpendable() bool {
	return u.TxID != "" && u.Value > 0 && len(u.ScriptPubKey) > 0
}

// FilterSpendable pre-filters utxos to the spendable subset (§4.9 step 1).
// If none remain, it returns a detailed per-UTXO diagnostic error.
func FilterSpendable(utxos []UTXO) ([]UTXO, error) {
	var spendable []UTXO
	var diagnostics []string

	for i, u := range utxos {
		if u.IsSpendable() {
			spendable = append(spendable, u)
			continue
		}
		diagnostics = append(diagnostics, utxoDiagnostic(i, u))
	}

	if len(spendable) == 0 {
		return nil, errors.New(errors.ERR_INSUFFICIENT_FUNDS, "no spendable UTXOs in the provided set of %d", len(utxos)).
			WithTechnicalDetails(joinDiagnostics(diagnostics))
	}

	return spendable, nil
}

func utxoDiagnostic(i int, u UTXO) string {
	reasons := []string{}
	if u.TxID == "" {
		reasons = append(reasons, "empty txid")
	}
	if u.Value <= 0 {
		reasons = append(reasons, "non-positive value")
	}
	if len(u.ScriptPubKey) == 0 {
		reasons = append(reasons, "empty scriptPubKey")
	}
	return itoa(i) + ": " + joinDiagnostics(reasons)
}
