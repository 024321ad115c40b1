package scorefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// Format selects the score file encoding.
type Format int

const (
	// FormatText is one "enroll test score" line per trial.
	FormatText Format = iota
	// FormatJSON is {"trials":[{"enroll":...,"test":...,"score":...}]}.
	FormatJSON
)

type trialScore struct {
	Enroll string  `json:"enroll"`
	Test   string  `json:"test"`
	Score  float64 `json:"score"`
}

type scoreFile struct {
	Trials []trialScore `json:"trials"`
}

// ParseScores reads detector scores keyed by trial. Duplicate trials
// keep the last score seen, matching a reader that overwrites rows.
func ParseScores(r io.Reader, format Format) (map[string]float64, error) {
	if format == FormatJSON {
		return parseJSONScores(r)
	}
	return parseTextScores(r)
}

func parseTextScores(r io.Reader) (map[string]float64, error) {
	scores := make(map[string]float64)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("score line %d: expected 3 fields, got %d", line, len(fields))
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("score line %d: %w", line, err)
		}
		scores[trialID(fields[0], fields[1])] = v
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	return scores, nil
}

func parseJSONScores(r io.Reader) (map[string]float64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	var sf scoreFile
	if err := sonic.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("decode score json: %w", err)
	}
	scores := make(map[string]float64, len(sf.Trials))
	for _, t := range sf.Trials {
		scores[trialID(t.Enroll, t.Test)] = t.Score
	}
	return scores, nil
}
