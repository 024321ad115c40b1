package metrics

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_MatchesComponents(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 29))
	tar := randomScores(rng, 200, 0.7)
	non := randomScores(rng, 250, -0.7)
	priors := []float64{0.01, 0.5, 0.99}

	res, err := Evaluate(tar, non, priors, true)
	require.NoError(t, err)

	minDCF, err := MinDCF(tar, non, priors, true)
	require.NoError(t, err)
	actDCF, err := ActDCF(tar, non, priors, true)
	require.NoError(t, err)
	rocch, err := BuildROCCH(tar, non)
	require.NoError(t, err)

	assert.Equal(t, minDCF, res.MinDCF)
	assert.Equal(t, actDCF, res.ActDCF)
	assert.Equal(t, EER(rocch), res.EER)
	assert.Equal(t, PRBEP(rocch, len(tar), len(non)), res.PRBEP)
}

func TestEvaluate_PropagatesInvalidPriors(t *testing.T) {
	_, err := Evaluate([]float64{1}, []float64{0}, []float64{0.9, 0.1}, true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScoreSet_Evaluate(t *testing.T) {
	set := &ScoreSet{Target: []float64{1, 2, 3}, NonTarget: []float64{-1, 0}}
	res, err := set.Evaluate([]float64{0.5}, true)
	require.NoError(t, err)
	assert.Zero(t, res.EER, "separable populations have EER 0")
	assert.Zero(t, res.MinDCF[0])
}

func TestEvaluateBatch(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 1))
	priors := []float64{0.1, 0.5}

	jobs := make([]BatchJob, 8)
	for i := range jobs {
		jobs[i] = BatchJob{
			Name: fmt.Sprintf("job-%d", i),
			Scores: ScoreSet{
				Target:    randomScores(rng, 50+rng.IntN(50), 0.5),
				NonTarget: randomScores(rng, 50+rng.IntN(50), -0.5),
			},
		}
	}
	// One job carries a contract violation and must fail alone.
	jobs[3].Scores.Target[0] = math.NaN()

	results := EvaluateBatch(context.Background(), jobs, priors, true, WithWorkers(3))
	require.Len(t, results, len(jobs))

	for i, res := range results {
		assert.Equal(t, jobs[i].Name, res.Name)
		if i == 3 {
			assert.ErrorIs(t, res.Err, ErrInvalidInput)
			continue
		}
		require.NoError(t, res.Err)

		want, err := Evaluate(jobs[i].Scores.Target, jobs[i].Scores.NonTarget, priors, true)
		require.NoError(t, err)
		assert.Equal(t, want, res.Result, "batch result %d must match a direct call", i)
	}
}

func TestEvaluateBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := make([]BatchJob, 16)
	for i := range jobs {
		jobs[i] = BatchJob{
			Name:   fmt.Sprintf("job-%d", i),
			Scores: ScoreSet{Target: []float64{1}, NonTarget: []float64{0}},
		}
	}

	results := EvaluateBatch(ctx, jobs, []float64{0.5}, true, WithWorkers(2))
	require.Len(t, results, len(jobs))
	for i, res := range results {
		if res.Err != nil {
			assert.ErrorIs(t, res.Err, context.Canceled)
			assert.Equal(t, jobs[i].Name, res.Name)
		} else {
			assert.NotNil(t, res.Result, "a result without an error must have run")
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	sizes := []struct {
		tar int
		non int
	}{
		{250, 250},
		{2000, 2000},
		{250, 10000},
	}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Tar%d_Non%d", size.tar, size.non), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(8, 8))
			tar := randomScores(rng, size.tar, 1)
			non := randomScores(rng, size.non, -1)
			priors := []float64{0.01, 0.5}

			b.ResetTimer()
			for b.Loop() {
				_, _ = Evaluate(tar, non, priors, true)
			}
		})
	}
}
