package analyzers

import (
	"regexp"
	"strings"
)

// Generic responsibility phrases that describe duties instead of results.
var genericPhrases = []string{
	"responsible for", "duties include", "tasks involved", "worked on",
	"helped with", "assisted in", "participated in", "involved in",
	"responsible to", "accountable for",
}

// Patterns indicating measurable, results-oriented statements.
var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`increased.*\d+%`),
	regexp.MustCompile(`decreased.*\d+%`),
	regexp.MustCompile(`improved.*\d+%`),
	regexp.MustCompile(`reduced.*\d+%`),
	regexp.MustCompile(`achieved.*\d+`),
	regexp.MustCompile(`exceeded.*\d+`),
	regexp.MustCompile(`generated.*\$`),
	regexp.MustCompile(`saved.*\$`),
	regexp.MustCompile(`delivered.*ahead of schedule`),
	regexp.MustCompile(`under budget`),
	regexp.MustCompile(`recognition`),
	regexp.MustCompile(`award`),
	regexp.MustCompile(`promoted`),
}

type achievementsAnalyzer struct{}

// NewAchievements rates the ratio of achievement statements to generic
// responsibility phrasing. With no matches of either kind the score is a
// neutral 50.
func NewAchievements() Analyzer { return achievementsAnalyzer{} }

func (achievementsAnalyzer) Name() string { return "achievements" }

func (achievementsAnalyzer) Analyze(text string) Result {
	lower := strings.ToLower(text)

	genericCount := 0
	for _, phrase := range genericPhrases {
		genericCount += strings.Count(lower, phrase)
	}

	achievementCount := 0
	for _, pattern := range achievementPatterns {
		achievementCount += len(pattern.FindAllString(lower, -1))
	}

	total := genericCount + achievementCount
	if total == 0 {
		return Result{
			Score:    50,
			Feedback: "Add more specific examples of your achievements and impact.",
		}
	}

	score := achievementCount * 100 / total
	if score > 100 {
		score = 100
	}

	var feedback string
	switch {
	case score >= 80:
		feedback = "Excellent focus on achievements! High ratio of results-oriented content."
	case score >= 60:
		feedback = "Good balance. Consider replacing some responsibility statements with specific achievements."
	case score >= 40:
		feedback = "Mix of responsibilities and achievements. Focus more on 'what you accomplished' vs 'what you did'."
	default:
		feedback = "Too many generic responsibility statements. Rewrite to show specific results and impact."
	}

	return Result{Score: score, Feedback: feedback}
}
