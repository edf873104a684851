package inscription

import (
	"context"
	"math"

	"github.com/onionoriginals/originals/adapters"
	"github.com/onionoriginals/originals/errors"
)

// MaxCallerFeeRate is the anti-drain guard of §4.9: caller-supplied fee
// rates above this are rejected outright rather than silently clamped.
const MaxCallerFeeRate = 10_000.0

func isValidRate(r float64) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0) && r > 0
}

// ResolveFeeRate tries, in order, an external fee oracle, the ordinals
// provider's own estimate, and finally the caller-supplied rate. Each
// candidate must be a finite positive number or it is skipped. A
// caller-supplied rate above MaxCallerFeeRate is rejected before it is
// ever tried, per the anti-drain guard.
func ResolveFeeRate(ctx context.Context, oracle adapters.FeeOracle, ordinals adapters.OrdinalsProvider, targetBlocks int, callerRate *float64) (float64, error) {
	if callerRate != nil && *callerRate > MaxCallerFeeRate {
		return 0, errors.New(errors.ERR_INVALID_INPUT, "fee rate %.2f exceeds the maximum permitted rate of %.0f sats/vB", *callerRate, MaxCallerFeeRate)
	}

	if oracle != nil {
		if rate, err := oracle.EstimateFeeRate(ctx, targetBlocks); err == nil && isValidRate(rate) {
			return rate, nil
		}
	}

	if ordinals != nil {
		if rate, err := ordinals.EstimateFee(ctx, targetBlocks); err == nil && isValidRate(rate) {
			return rate, nil
		}
	}

	if callerRate != nil && isValidRate(*callerRate) {
		return *callerRate, nil
	}

	return 0, errors.New(errors.ERR_FEE_RATE_UNAVAILABLE, "no fee rate source produced a usable estimate")
}
