package metrics

import "errors"

var (
	// ErrInvalidInput reports scores or priors that violate a caller
	// contract: NaN scores, priors outside (0,1), unsorted priors.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateInput reports an empty population where a non-empty
	// one is required for the requested statistic. The hull and DCF
	// functions never return it: they fall back to the documented
	// zero-rate convention instead.
	ErrDegenerateInput = errors.New("degenerate input")
)
