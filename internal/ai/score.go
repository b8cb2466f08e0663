package ai

import (
	"regexp"
	"strconv"
)

var (
	// "85/100", "85 / 100"
	slashScorePattern = regexp.MustCompile(`(\d{2,3})\s*/\s*100`)
	// fallback: a bare number in the 50-100 range somewhere in the prose
	bareScorePattern = regexp.MustCompile(`\b([5-9][0-9]|100)\b`)
)

// ExtractScore pulls a numeric 0-100 score out of free-text oracle output.
// It prefers an explicit "NN/100" notation and falls back to the first bare
// number between 50 and 100. The second return value is false when nothing
// usable was found.
func ExtractScore(text string) (int, bool) {
	if text == "" {
		return 0, false
	}

	if m := slashScorePattern.FindStringSubmatch(text); m != nil {
		score, err := strconv.Atoi(m[1])
		if err == nil && score >= 0 && score <= 100 {
			return score, true
		}
	}

	if m := bareScorePattern.FindStringSubmatch(text); m != nil {
		score, err := strconv.Atoi(m[1])
		if err == nil {
			return score, true
		}
	}

	return 0, false
}
