package metrics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DCF computes the detection cost prior*p_miss + (1-prior)*p_fa for
// every prior and every operating point. Row i of the result holds
// prior i across all points. When normalize is set each row is divided
// by min(prior, 1-prior), the cost of the better trivial strategy, so
// 1.0 means "no better than always accepting or always rejecting".
//
// At least one prior is required and every prior must lie strictly
// inside (0,1); violations fail with ErrInvalidInput, never clamp.
func DCF(pMiss, pFa, priors []float64, normalize bool) (*mat.Dense, error) {
	if len(pMiss) != len(pFa) {
		return nil, fmt.Errorf("%w: p_miss and p_fa lengths differ (%d != %d)",
			ErrInvalidInput, len(pMiss), len(pFa))
	}
	if len(pMiss) == 0 {
		return nil, fmt.Errorf("%w: no operating points", ErrInvalidInput)
	}
	if err := checkPriors(priors); err != nil {
		return nil, err
	}

	dcf := mat.NewDense(len(priors), len(pMiss), nil)
	row := make([]float64, len(pMiss))
	for i, p := range priors {
		for j := range pMiss {
			row[j] = p*pMiss[j] + (1-p)*pFa[j]
		}
		if normalize {
			floats.Scale(1/math.Min(p, 1-p), row)
		}
		dcf.SetRow(i, row)
	}
	return dcf, nil
}

// MinDCF computes the minimum detection cost attainable by any decision
// threshold, one value per prior. The hull vertices enumerate exactly
// the achievable optima of the linear cost, so the minimum over
// vertices equals the true minimum over all thresholds.
func MinDCF(tar, non, priors []float64, normalize bool) ([]float64, error) {
	rocch, err := BuildROCCH(tar, non)
	if err != nil {
		return nil, err
	}
	return minDCFOnHull(rocch, priors, normalize)
}

func minDCFOnHull(rocch ROCCH, priors []float64, normalize bool) ([]float64, error) {
	pMiss, pFa := rocch.Points()
	dcf, err := DCF(pMiss, pFa, priors, normalize)
	if err != nil {
		return nil, err
	}
	minDCF := make([]float64, len(priors))
	for i := range priors {
		minDCF[i] = floats.Min(dcf.RawRowView(i))
	}
	return minDCF, nil
}

// ActDCF computes the detection cost of a detector whose scores are
// taken at face value as log-likelihood ratios: for each prior the
// fixed Bayes threshold t = log((1-prior)/prior) is applied to the raw
// scores with no threshold search. Priors must be supplied in ascending
// order; that is a caller contract, not something sorted silently.
//
// Misses and false alarms are counted by binary search on one sorted
// copy of each population, so the total cost is O(N log N).
func ActDCF(tar, non, priors []float64, normalize bool) ([]float64, error) {
	if err := checkScores(tar); err != nil {
		return nil, fmt.Errorf("target scores: %w", err)
	}
	if err := checkScores(non); err != nil {
		return nil, fmt.Errorf("nontarget scores: %w", err)
	}
	if err := checkPriors(priors); err != nil {
		return nil, err
	}
	if !sort.Float64sAreSorted(priors) {
		return nil, fmt.Errorf("%w: priors must be ascending", ErrInvalidInput)
	}

	sortedTar := append([]float64(nil), tar...)
	sortedNon := append([]float64(nil), non...)
	sort.Float64s(sortedTar)
	sort.Float64s(sortedNon)

	actDCF := make([]float64, len(priors))
	for i, p := range priors {
		t := math.Log(1-p) - math.Log(p)
		nMiss := sort.SearchFloat64s(sortedTar, t)
		nFa := len(sortedNon) - sort.SearchFloat64s(sortedNon, t)
		v := p*ratio(nMiss, len(tar)) + (1-p)*ratio(nFa, len(non))
		if normalize {
			v /= math.Min(p, 1-p)
		}
		actDCF[i] = v
	}
	return actDCF, nil
}

func checkPriors(priors []float64) error {
	if len(priors) == 0 {
		return fmt.Errorf("%w: no priors", ErrInvalidInput)
	}
	for _, p := range priors {
		if !(p > 0 && p < 1) {
			return fmt.Errorf("%w: prior %g outside (0,1)", ErrInvalidInput, p)
		}
	}
	return nil
}
