package analyzers

import (
	"regexp"
	"strings"
)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{4}\b`),
	regexp.MustCompile(`\b\d{4}\s*-\s*\d{4}\b`),
	regexp.MustCompile(`\b\d{4}\s*–\s*\d{4}\b`),
	regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\s*-\s*(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b`),
}

var gapIndicators = []string{
	"gap", "break", "sabbatical", "unemployed", "freelance",
	"between positions", "career break",
}

var (
	yearRangePattern = regexp.MustCompile(`\d{4}\s*-\s*\d{4}`)
	monthYearPattern = regexp.MustCompile(`[A-Za-z]{3}\s+\d{4}`)
)

type dateConsistency struct{}

// NewDateConsistency runs a coarse timeline check: it counts date-like
// tokens, looks for gap vocabulary and mixed date formats, and maps the
// findings onto a small fixed set of scores. It does not reconstruct an
// actual employment timeline.
func NewDateConsistency() Analyzer { return dateConsistency{} }

func (dateConsistency) Name() string { return "date_consistency" }

func (dateConsistency) Analyze(text string) Result {
	dateCount := 0
	for _, pattern := range datePatterns {
		dateCount += len(pattern.FindAllString(text, -1))
	}

	if dateCount < 2 {
		return Result{
			Score:    50,
			Feedback: "Not enough date information to analyze gaps. Include start/end dates for positions.",
		}
	}

	lower := strings.ToLower(text)
	for _, indicator := range gapIndicators {
		if strings.Contains(lower, indicator) {
			return Result{
				Score:    60,
				Feedback: "Employment gaps detected. Solutions: 1) Add freelance/consulting work during gaps, 2) Include relevant volunteer experience, 3) Mention professional development (courses, certifications), 4) Consider functional resume format to de-emphasize gaps.",
			}
		}
	}

	if yearRangePattern.MatchString(text) && monthYearPattern.MatchString(text) {
		return Result{
			Score:    75,
			Feedback: "Date formatting needs consistency. Issues: Mixed date formats detected. Use consistent format like 'Jan 2020 - Dec 2022' throughout.",
		}
	}

	return Result{
		Score:    85,
		Feedback: "Good date consistency. Ensure all positions show clear start/end dates. If currently employed, use 'Present' instead of end date.",
	}
}
