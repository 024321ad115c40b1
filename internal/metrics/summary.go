package metrics

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes one score population for operator-facing reports.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes descriptive statistics of a score population.
// Empty populations fail with ErrDegenerateInput: there is nothing to
// describe, unlike the hull metrics which have a zero-rate convention.
func Summarize(scores []float64) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, fmt.Errorf("%w: empty score population", ErrDegenerateInput)
	}

	data := stats.Float64Data(scores)
	sum := Summary{Count: len(scores)}
	var err error
	if sum.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if sum.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if sum.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, err
	}
	if sum.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	if sum.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}
	return sum, nil
}
