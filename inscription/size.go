package inscription

import "math"

// CommitVBytes estimates the virtual size of the commit transaction for
// P2WPKH-like inputs and a single P2TR output, per §4.9's size formula.
func CommitVBytes(inputs, outputs int) float64 {
	v := 10.5 + float64(inputs)*68 + p2trOutputVBytes
	if outputs > 1 {
		v += float64(outputs-1) * 31
	}
	return math.Ceil(v)
}

const p2trOutputVBytes = 43

// RevealVBytes estimates the virtual size of the reveal transaction from
// the inscription content length, an empirical witness-discounted formula
// calibrated for text/image inscriptions (§9 open question: drifts for
// payloads over ~100 KB).
func RevealVBytes(contentBytes int) float64 {
	return math.Ceil(100 + 0.27*float64(contentBytes))
}

// EstimateFee applies the relay-minimum buffer used by the high-level fee
// calculator. The internal selection-loop estimator does not use this
// function; it applies the 5% safety factor instead (§4.9).
func EstimateFee(vbytes, feeRate float64) int64 {
	return int64(math.Ceil(vbytes*feeRate)) + 2
}

// MinimumInscriptionAmount is revealFee + DustLimit, the smallest commit
// amount that leaves the reveal transaction solvent.
func MinimumInscriptionAmount(contentBytes int, feeRate float64) int64 {
	revealFee := int64(math.Ceil(RevealVBytes(contentBytes) * feeRate))
	return revealFee + DustLimit
}
