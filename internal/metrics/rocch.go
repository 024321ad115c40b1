package metrics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// BuildROCCH computes the convex hull of the empirical ROC curve of a
// detector from its target and non-target scores.
//
// Thresholds are swept over the pooled sorted scores, one step per
// distinct score value: trials with identical scores cannot be
// separated by a threshold, so ties collapse into a single step. Each
// step contributes the operating point
//
//	p_miss = |{tar < t}| / Ntar, p_fa = |{non >= t}| / Nnon
//
// and the lower convex hull of those points is the set of operating
// points achievable by any (possibly randomized) thresholding rule.
//
// Empty populations do not fail: a rate with no observed trials of its
// class is 0 by convention, so an empty target set yields a flat hull
// at p_miss = 0. NaN scores fail with ErrInvalidInput.
func BuildROCCH(tar, non []float64) (ROCCH, error) {
	if err := checkScores(tar); err != nil {
		return nil, fmt.Errorf("target scores: %w", err)
	}
	if err := checkScores(non); err != nil {
		return nil, fmt.Errorf("nontarget scores: %w", err)
	}

	ntar, nnon := len(tar), len(non)

	type trial struct {
		score  float64
		target bool
	}
	pool := make([]trial, 0, ntar+nnon)
	for _, s := range tar {
		pool = append(pool, trial{score: s, target: true})
	}
	for _, s := range non {
		pool = append(pool, trial{score: s, target: false})
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].score < pool[j].score })

	// Raw ROC staircase, accept-all endpoint first, reject-all last.
	pts := make([]Vertex, 0, len(pool)+1)
	miss, fa := 0, nnon
	pts = append(pts, Vertex{PMiss: ratio(miss, ntar), PFa: ratio(fa, nnon)})
	for i := 0; i < len(pool); {
		j := i
		for j < len(pool) && pool[j].score == pool[i].score {
			if pool[j].target {
				miss++
			} else {
				fa--
			}
			j++
		}
		pts = append(pts, Vertex{PMiss: ratio(miss, ntar), PFa: ratio(fa, nnon)})
		i = j
	}

	hull := lowerHull(pts)

	// The hull keeps only the lowest point at p_fa = 0; put the
	// dominated reject-all corner back so the staircase spans the full
	// miss range. Skipped when Ntar = 0: p_miss is identically 0 there.
	if ntar > 0 {
		if last := hull[len(hull)-1]; last.PMiss < 1 {
			hull = append(hull, Vertex{PMiss: 1, PFa: last.PFa})
		}
	}
	return hull, nil
}

func checkScores(scores []float64) error {
	if floats.HasNaN(scores) {
		return fmt.Errorf("%w: NaN score", ErrInvalidInput)
	}
	return nil
}

// ratio returns n/d, or 0 when the denominator is zero: a detector with
// no trials of one class observes no errors of that class.
func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// lowerHull runs a monotone-stack scan over the staircase points in
// (x = p_fa, y = p_miss) space, popping the stack while the turn is not
// strictly convex. Collinear points are popped too, so only slope
// changes survive as vertices.
func lowerHull(pts []Vertex) ROCCH {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].PFa != pts[j].PFa {
			return pts[i].PFa < pts[j].PFa
		}
		return pts[i].PMiss < pts[j].PMiss
	})

	hull := make(ROCCH, 0, len(pts))
	for _, p := range pts {
		if len(hull) > 0 && hull[len(hull)-1] == p {
			continue
		}
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Canonical vertex order: PMiss non-decreasing, PFa non-increasing.
	sort.Slice(hull, func(i, j int) bool {
		if hull[i].PMiss != hull[j].PMiss {
			return hull[i].PMiss < hull[j].PMiss
		}
		return hull[i].PFa > hull[j].PFa
	})
	return hull
}

// cross is the z component of (a-o) x (b-o) in (p_fa, p_miss) space.
func cross(o, a, b Vertex) float64 {
	return (a.PFa-o.PFa)*(b.PMiss-o.PMiss) - (a.PMiss-o.PMiss)*(b.PFa-o.PFa)
}
