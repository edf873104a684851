package inscription

import (
	"math"
	"sort"

	"github.com/onionoriginals/originals/errors"
)

const maxSelectionIterations = 5
const selectionSafetyFactor = 1.05

type selectionResult struct {
	selected []UTXO
	total    int64
	fee      int64
	change   int64
}

// selectUtxos implements the iterative greedy smallest-first selection of
// §4.9 step 5: target starts at commitAmount + estimatedFee(1 input, 2
// outputs); each round selects until the target is met, recomputes the fee
// against the actual input count, drops to a changeless 1-output fee
// estimate if the resulting change would be dust, and otherwise enlarges
// the target by the 5% safety factor and tries again.
func selectUtxos(spendable []UTXO, commitAmount int64, feeRate float64) (selectionResult, error) {
	sorted := make([]UTXO, len(spendable))
	copy(sorted, spendable)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	// The loop's own estimate omits EstimateFee's relay buffer.
	commitFee := func(inputs, outputs int) int64 {
		return int64(math.Ceil(CommitVBytes(inputs, outputs) * feeRate))
	}

	target := commitAmount + commitFee(1, 2)

	var last selectionResult
	for iter := 0; iter < maxSelectionIterations; iter++ {
		var picked []UTXO
		var total int64
		for _, u := range sorted {
			picked = append(picked, u)
			total += u.Value
			if total >= target {
				break
			}
		}

		if total < target {
			last = selectionResult{selected: picked, total: total}
			target = int64(float64(target) * selectionSafetyFactor)
			continue
		}

		fee := commitFee(len(picked), 2)
		change := total - commitAmount - fee
		if change < DustLimit {
			fee = commitFee(len(picked), 1)
			change = 0
		}

		last = selectionResult{selected: picked, total: total, fee: fee, change: change}

		if total >= commitAmount+fee {
			return last, nil
		}

		target = int64(float64(commitAmount+fee) * selectionSafetyFactor)
	}

	return selectionResult{}, errors.New(
		errors.ERR_INSUFFICIENT_FUNDS,
		"could not select sufficient UTXOs after %d iterations: selected=%d required=%d utxos_considered=%d utxos_available=%d",
		maxSelectionIterations, last.total, commitAmount+last.fee, len(last.selected), len(sorted),
	)
}
