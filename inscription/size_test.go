package inscription

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitVBytesSingleInputTwoOutputs(t *testing.T) {
	assert.Equal(t, math.Ceil(10.5+68+43+31), CommitVBytes(1, 2))
}

func TestCommitVBytesSingleOutput(t *testing.T) {
	assert.Equal(t, math.Ceil(10.5+68+43), CommitVBytes(1, 1))
}

func TestRevealVBytesScalesWithContent(t *testing.T) {
	small := RevealVBytes(10)
	large := RevealVBytes(10_000)
	assert.Less(t, small, large)
	assert.Equal(t, math.Ceil(100+0.27*10), small)
}

func TestEstimateFeeAddsRelayBuffer(t *testing.T) {
	fee := EstimateFee(100, 5)
	assert.Equal(t, int64(100*5+2), fee)
}

func TestMinimumInscriptionAmount(t *testing.T) {
	min := MinimumInscriptionAmount(5, 10)
	assert.Greater(t, min, int64(DustLimit))
}
