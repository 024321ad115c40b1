// Package metrics computes detector evaluation metrics from two raw
// score populations: the ROC convex hull and the operating-point
// summaries derived from it (min-DCF, act-DCF, EER, PRBEP).
package metrics

// ScoreSet pairs the detector outputs of matching (target) and
// non-matching (non-target) trials. Higher scores mean "more likely
// target". The slices are treated as read-only once the set is built.
type ScoreSet struct {
	Target    []float64
	NonTarget []float64
}

// Vertex is one achievable operating point on the ROC convex hull.
type Vertex struct {
	PMiss float64
	PFa   float64
}

// ROCCH is the lower convex envelope of the empirical ROC curve in
// (p_fa, p_miss) space. Vertices are ordered with PMiss non-decreasing
// and PFa non-increasing, so the hull runs from the accept-all corner
// to the reject-all corner.
type ROCCH []Vertex

// Points returns the hull vertices as parallel p_miss and p_fa vectors.
func (r ROCCH) Points() (pMiss, pFa []float64) {
	pMiss = make([]float64, len(r))
	pFa = make([]float64, len(r))
	for i, v := range r {
		pMiss[i] = v.PMiss
		pFa[i] = v.PFa
	}
	return pMiss, pFa
}
