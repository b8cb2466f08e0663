package analyzers

import (
	"fmt"
	"strings"
)

// Ideal word-count bands per profile.
const (
	entryMinWords = 400
	entryMaxWords = 600

	experiencedMinWords = 700
	experiencedMaxWords = 1000
)

// LengthScore rates the resume's word count against the ideal band for the
// profile: 100 inside the band, otherwise half a point off per word of
// deviation, floored at 0. Empty text scores 0.
func LengthScore(text string, experienced bool) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}

	minWords, maxWords := entryMinWords, entryMaxWords
	if experienced {
		minWords, maxWords = experiencedMinWords, experiencedMaxWords
	}

	if words >= minWords && words <= maxWords {
		return 100
	}

	deviation := minWords - words
	if words > maxWords {
		deviation = words - maxWords
	}

	score := 100 - deviation/2
	if score < 0 {
		score = 0
	}
	return score
}

type lengthAnalyzer struct {
	experienced bool
}

// NewLength wraps LengthScore as a pipeline analyzer.
func NewLength(experienced bool) Analyzer {
	return lengthAnalyzer{experienced: experienced}
}

func (lengthAnalyzer) Name() string { return "length" }

func (a lengthAnalyzer) Analyze(text string) Result {
	words := len(strings.Fields(text))
	if words == 0 {
		return Result{Score: 0, Feedback: "No text to analyze."}
	}

	score := LengthScore(text, a.experienced)

	band := fmt.Sprintf("%d-%d", entryMinWords, entryMaxWords)
	if a.experienced {
		band = fmt.Sprintf("%d-%d", experiencedMinWords, experiencedMaxWords)
	}

	var feedback string
	switch {
	case score == 100:
		feedback = fmt.Sprintf("Great length: %d words sits inside the ideal %s word band.", words, band)
	case score >= 75:
		feedback = fmt.Sprintf("Length is close: %d words against an ideal band of %s. Trim or expand slightly.", words, band)
	case score >= 50:
		feedback = fmt.Sprintf("Length needs work: %d words against an ideal band of %s.", words, band)
	default:
		feedback = fmt.Sprintf("Length is far off: %d words against an ideal band of %s. Restructure the resume.", words, band)
	}

	return Result{Score: score, Feedback: feedback}
}
