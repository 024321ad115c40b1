package metrics

// Result bundles every operating-point summary of one score set.
// MinDCF and ActDCF are indexed like the priors they were computed for.
type Result struct {
	MinDCF []float64
	ActDCF []float64
	EER    float64
	PRBEP  float64
}

// Evaluate computes min-DCF, act-DCF, EER and PRBEP for a pair of score
// populations in one call. The hull is built once and shared by
// min-DCF, EER and PRBEP; act-DCF works on the raw scores and never
// touches the hull.
func Evaluate(tar, non, priors []float64, normalize bool) (*Result, error) {
	rocch, err := BuildROCCH(tar, non)
	if err != nil {
		return nil, err
	}
	minDCF, err := minDCFOnHull(rocch, priors, normalize)
	if err != nil {
		return nil, err
	}
	actDCF, err := ActDCF(tar, non, priors, normalize)
	if err != nil {
		return nil, err
	}
	return &Result{
		MinDCF: minDCF,
		ActDCF: actDCF,
		EER:    EER(rocch),
		PRBEP:  PRBEP(rocch, len(tar), len(non)),
	}, nil
}

// Evaluate is the ScoreSet convenience form of the package-level call.
func (s *ScoreSet) Evaluate(priors []float64, normalize bool) (*Result, error) {
	return Evaluate(s.Target, s.NonTarget, priors, normalize)
}
