package metrics

import "gonum.org/v1/gonum/floats"

// EER returns the equal error rate: the point on the hull where the
// miss rate equals the false alarm rate. A vertex sitting exactly on
// the diagonal is returned directly; otherwise the crossing is linearly
// interpolated between the two bracketing vertices.
func EER(rocch ROCCH) float64 {
	pMiss, pFa := rocch.Points()
	return breakEven(pMiss, pFa)
}

// PRBEP returns the break-even point in raw trial counts rather than
// rates: the same crossing computed over miss and false alarm counts
// scaled by the population sizes.
func PRBEP(rocch ROCCH, ntar, nnon int) float64 {
	nMiss, nFa := rocch.Points()
	floats.Scale(float64(ntar), nMiss)
	floats.Scale(float64(nnon), nFa)
	return breakEven(nMiss, nFa)
}

// breakEven walks adjacent points of a curve with miss non-decreasing
// and fa non-increasing. Their difference is monotone, so the diagonal
// is crossed at most once.
func breakEven(miss, fa []float64) float64 {
	for i := range miss {
		d := miss[i] - fa[i]
		if d == 0 {
			return miss[i]
		}
		if d > 0 {
			if i == 0 {
				return miss[0]
			}
			d0 := miss[i-1] - fa[i-1]
			alpha := -d0 / (d - d0)
			return miss[i-1] + alpha*(miss[i]-miss[i-1])
		}
	}
	// miss stays below fa over the whole curve
	return miss[len(miss)-1]
}
