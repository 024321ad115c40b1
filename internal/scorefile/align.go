package scorefile

import (
	"errors"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/veridex-labs/veridex/internal/metrics"
)

// ErrNoTrials reports a key and score file sharing no trials at all.
var ErrNoTrials = errors.New("no trials aligned between key and scores")

// Align splits the scored trials of the key into target and non-target
// populations. Trials in the key without a score are counted and
// logged, not fatal: a partial score file still evaluates. Trials are
// visited in sorted order so the populations come out deterministic.
func Align(key Key, scores map[string]float64) (*metrics.ScoreSet, error) {
	ids := make([]string, 0, len(key))
	for id := range key {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	set := &metrics.ScoreSet{}
	missing := 0
	for _, id := range ids {
		s, ok := scores[id]
		if !ok {
			missing++
			continue
		}
		if key[id] {
			set.Target = append(set.Target, s)
		} else {
			set.NonTarget = append(set.NonTarget, s)
		}
	}

	if missing > 0 {
		log.Warn().
			Int("missing", missing).
			Int("target", len(set.Target)).
			Int("nontarget", len(set.NonTarget)).
			Msg("trials in key without a score")
	}
	if len(set.Target)+len(set.NonTarget) == 0 {
		return nil, ErrNoTrials
	}
	return set, nil
}
