// Package scorefile loads trial keys and detector score files and
// aligns them into the score populations the metrics package consumes.
package scorefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Key maps a trial identifier to its ground-truth label, true for a
// target (matching) comparison.
type Key map[string]bool

func trialID(enroll, test string) string {
	return enroll + "\t" + test
}

// ParseKey reads a trial key with one "enroll test target|nontarget"
// line per comparison. Blank lines and #-comments are skipped.
func ParseKey(r io.Reader) (Key, error) {
	key := make(Key)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("key line %d: expected 3 fields, got %d", line, len(fields))
		}
		switch fields[2] {
		case "target", "tgt":
			key[trialID(fields[0], fields[1])] = true
		case "nontarget", "imp":
			key[trialID(fields[0], fields[1])] = false
		default:
			return nil, fmt.Errorf("key line %d: unknown label %q", line, fields[2])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	return key, nil
}
