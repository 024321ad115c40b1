package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePriors parses a comma separated prior list, e.g. "0.01,0.5".
// Range and ordering are enforced downstream by the metrics package.
func ParsePriors(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	priors := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid prior %q: %w", part, err)
		}
		priors = append(priors, p)
	}
	if len(priors) == 0 {
		return nil, fmt.Errorf("no priors in %q", s)
	}
	return priors, nil
}
