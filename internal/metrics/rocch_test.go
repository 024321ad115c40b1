package metrics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomScores(rng *rand.Rand, n int, offset float64) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = rng.NormFloat64() + offset
	}
	return scores
}

func TestBuildROCCH_ConcreteScenario(t *testing.T) {
	tar := []float64{1, 2, 3, 4, 5}
	non := []float64{0, 1, 2, 3, 4}

	rocch, err := BuildROCCH(tar, non)
	require.NoError(t, err)

	// The four overlapping score values collapse onto one hull segment
	// from (p_miss=0, p_fa=0.8) to (p_miss=0.8, p_fa=0).
	want := ROCCH{
		{PMiss: 0, PFa: 1},
		{PMiss: 0, PFa: 0.8},
		{PMiss: 0.8, PFa: 0},
		{PMiss: 1, PFa: 0},
	}
	require.Len(t, rocch, len(want))
	for i, v := range want {
		assert.InDelta(t, v.PMiss, rocch[i].PMiss, 1e-12, "vertex %d p_miss", i)
		assert.InDelta(t, v.PFa, rocch[i].PFa, 1e-12, "vertex %d p_fa", i)
	}
}

func TestBuildROCCH_TiesCollapse(t *testing.T) {
	// Identical scores everywhere: no threshold separates anything, so
	// the hull is the chance diagonal.
	rocch, err := BuildROCCH([]float64{1, 1, 1}, []float64{1, 1})
	require.NoError(t, err)

	want := ROCCH{{PMiss: 0, PFa: 1}, {PMiss: 1, PFa: 0}}
	assert.Equal(t, want, rocch)
	assert.InDelta(t, 0.5, EER(rocch), 1e-12)
}

func TestBuildROCCH_MonotoneAndConvex(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 50; trial++ {
		tar := randomScores(rng, 1+rng.IntN(200), 0.5)
		non := randomScores(rng, 1+rng.IntN(200), -0.5)

		rocch, err := BuildROCCH(tar, non)
		require.NoError(t, err)
		require.NotEmpty(t, rocch)

		for i := 1; i < len(rocch); i++ {
			assert.GreaterOrEqual(t, rocch[i].PMiss, rocch[i-1].PMiss, "p_miss must not decrease")
			assert.LessOrEqual(t, rocch[i].PFa, rocch[i-1].PFa, "p_fa must not increase")
		}

		// No vertex may lie strictly above the chord of its neighbors.
		for i := 1; i < len(rocch)-1; i++ {
			x0, x1, x2 := rocch[i-1].PFa, rocch[i].PFa, rocch[i+1].PFa
			if x0 == x2 {
				continue
			}
			frac := (x1 - x0) / (x2 - x0)
			chord := rocch[i-1].PMiss + frac*(rocch[i+1].PMiss-rocch[i-1].PMiss)
			assert.LessOrEqual(t, rocch[i].PMiss, chord+1e-12, "vertex %d above chord", i)
		}
	}
}

func TestBuildROCCH_IdempotentAndPure(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	tar := randomScores(rng, 64, 1)
	non := randomScores(rng, 80, -1)
	tarCopy := append([]float64(nil), tar...)
	nonCopy := append([]float64(nil), non...)

	first, err := BuildROCCH(tar, non)
	require.NoError(t, err)
	second, err := BuildROCCH(tar, non)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs must yield a bit-identical hull")
	assert.Equal(t, tarCopy, tar, "inputs must not be mutated")
	assert.Equal(t, nonCopy, non, "inputs must not be mutated")
}

func TestBuildROCCH_NaNScore(t *testing.T) {
	_, err := BuildROCCH([]float64{1, math.NaN()}, []float64{0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = BuildROCCH([]float64{1}, []float64{math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildROCCH_EmptyTarget(t *testing.T) {
	rocch, err := BuildROCCH(nil, []float64{0, 1})
	require.NoError(t, err)

	// p_miss is identically 0 without target trials, so the hull is the
	// flat segment from the accept-all corner to (0,0).
	assert.Equal(t, ROCCH{{PMiss: 0, PFa: 1}, {PMiss: 0, PFa: 0}}, rocch)
	assert.Zero(t, EER(rocch))

	minDCF, err := MinDCF(nil, []float64{0, 1}, []float64{0.5}, true)
	require.NoError(t, err)
	assert.Zero(t, minDCF[0])
}

func TestBuildROCCH_EmptyNonTarget(t *testing.T) {
	rocch, err := BuildROCCH([]float64{0, 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, ROCCH{{PMiss: 0, PFa: 0}, {PMiss: 1, PFa: 0}}, rocch)
	assert.Zero(t, EER(rocch))
}

func TestBuildROCCH_BothEmpty(t *testing.T) {
	rocch, err := BuildROCCH(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ROCCH{{PMiss: 0, PFa: 0}}, rocch)
	assert.Zero(t, EER(rocch))
}
