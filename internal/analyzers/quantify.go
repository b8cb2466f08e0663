package analyzers

import (
	"fmt"
	"regexp"
)

// Tokens that mark a bullet as quantified: percentages, currency amounts,
// abbreviated numbers, multipliers, ratios, time periods and plain numbers.
var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+%`),
	regexp.MustCompile(`(?i)\$[\d,]+`),
	regexp.MustCompile(`(?i)\d+[kmb]`),
	regexp.MustCompile(`(?i)\d+\+`),
	regexp.MustCompile(`(?i)\d+x`),
	regexp.MustCompile(`(?i)\d+:\d+`),
	regexp.MustCompile(`(?i)\d+\s*(hours?|days?|weeks?|months?|years?)`),
	regexp.MustCompile(`\d{1,3}(,\d{3})*`),
	regexp.MustCompile(`\b\d+\b`),
}

type quantifyImpact struct{}

// NewQuantifyImpact scores how many bullet points carry measurable impact.
func NewQuantifyImpact() Analyzer { return quantifyImpact{} }

func (quantifyImpact) Name() string { return "quantify_impact" }

func (quantifyImpact) Analyze(text string) Result {
	bullets := extractBullets(text)
	if len(bullets) == 0 {
		return Result{
			Score:    0,
			Feedback: "No bullet points detected. Use bullet points to highlight achievements.",
		}
	}

	quantified := 0
	var unquantified []string
	for _, bullet := range bullets {
		if isQuantified(bullet) {
			quantified++
		} else if len(unquantified) < 3 {
			unquantified = append(unquantified, truncateExample(bullet))
		}
	}

	score := quantified * 100 / len(bullets)
	if score > 100 {
		score = 100
	}

	var feedback string
	switch {
	case score >= 90:
		feedback = fmt.Sprintf("Excellent quantification! %d/%d bullets include metrics. Your resume shows measurable impact.", quantified, len(bullets))
	case score >= 70:
		feedback = fmt.Sprintf("Good use of numbers (%d/%d bullets). To improve: Add specific metrics like '25%% increase', '$50K savings', or '3-month timeline' to remaining bullets.", quantified, len(bullets))
	case score >= 50:
		feedback = fmt.Sprintf("Moderate quantification (%d/%d bullets). Transform vague statements into numbers.", quantified, len(bullets))
		if len(unquantified) > 0 {
			feedback += fmt.Sprintf(" Example: '%s' -> Add percentages, dollar amounts, or timeframes.", unquantified[0])
		}
	default:
		feedback = fmt.Sprintf("Weak quantification (%d/%d bullets). Most bullets lack impact metrics.", quantified, len(bullets))
		if len(unquantified) > 2 {
			unquantified = unquantified[:2]
		}
		for _, example := range unquantified {
			feedback += fmt.Sprintf(" Fix: '%s' -> Specify: How much? How many? What %% improvement?", example)
		}
	}

	return Result{Score: score, Feedback: feedback}
}

func isQuantified(bullet string) bool {
	for _, pattern := range numberPatterns {
		if pattern.MatchString(bullet) {
			return true
		}
	}
	return false
}

func truncateExample(bullet string) string {
	runes := []rune(bullet)
	if len(runes) <= 60 {
		return bullet
	}
	return string(runes[:60]) + "..."
}
