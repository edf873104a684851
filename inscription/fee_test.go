package inscription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/originals/errors"
)

type stubFeeOracle struct {
	rate float64
	err  error
}

func (s stubFeeOracle) EstimateFeeRate(ctx context.Context, targetBlocks int) (float64, error) {
	return s.rate, s.err
}

func TestResolveFeeRatePrefersOracle(t *testing.T) {
	rate, err := ResolveFeeRate(context.Background(), stubFeeOracle{rate: 7}, nil, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 7.0, rate)
}

func TestResolveFeeRateSkipsInvalidOracleRate(t *testing.T) {
	rate, err := ResolveFeeRate(context.Background(), stubFeeOracle{rate: -1}, nil, 1, floatPtr(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, rate)
}

func TestResolveFeeRateFallsBackToCaller(t *testing.T) {
	rate, err := ResolveFeeRate(context.Background(), nil, nil, 1, floatPtr(12))
	require.NoError(t, err)
	assert.Equal(t, 12.0, rate)
}

func TestResolveFeeRateUnavailable(t *testing.T) {
	_, err := ResolveFeeRate(context.Background(), nil, nil, 1, nil)
	require.Error(t, err)

	var structured *errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, errors.ERR_FEE_RATE_UNAVAILABLE, structured.Code)
}

func TestResolveFeeRateRejectsExcessiveCallerRate(t *testing.T) {
	_, err := ResolveFeeRate(context.Background(), nil, nil, 1, floatPtr(20_000))
	require.Error(t, err)

	var structured *errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, errors.ERR_INVALID_INPUT, structured.Code)
}

func floatPtr(f float64) *float64 { return &f }
