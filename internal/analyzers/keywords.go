package analyzers

import (
	"fmt"
	"strings"
)

// Industry keyword list used for coverage scoring, grouped by category.
// The categories are flattened before matching; grouping is kept for
// maintainability of the data.
var industryKeywords = map[string][]string{
	"technical": {
		"python", "java", "javascript", "sql", "aws", "docker", "kubernetes",
		"api", "database", "machine learning", "data analysis", "git",
		"agile", "scrum", "ci/cd", "testing", "debugging",
	},
	"business": {
		"project management", "stakeholder", "budget", "roi", "kpi",
		"strategy", "leadership", "team building", "process improvement",
		"client relations", "sales", "revenue", "market analysis",
	},
	"general": {
		"communication", "problem solving", "analytical", "detail oriented",
		"time management", "multitasking", "adaptable", "creative",
		"collaborative", "self-motivated",
	},
}

type keywordsAnalyzer struct{}

// NewKeywords scores the fraction of industry keywords present in the
// text. Coverage is boosted by 1.5x since matching the whole list is
// unrealistic for any single resume.
func NewKeywords() Analyzer { return keywordsAnalyzer{} }

func (keywordsAnalyzer) Name() string { return "keywords" }

func (keywordsAnalyzer) Analyze(text string) Result {
	lower := strings.ToLower(text)

	total := 0
	found := 0
	for _, keywords := range industryKeywords {
		for _, keyword := range keywords {
			total++
			if strings.Contains(lower, keyword) {
				found++
			}
		}
	}

	score := found * 150 / total
	if score > 100 {
		score = 100
	}

	var feedback string
	switch {
	case score >= 80:
		feedback = fmt.Sprintf("Excellent keyword coverage! Found %d relevant keywords.", found)
	case score >= 60:
		feedback = fmt.Sprintf("Good keyword presence. Found %d keywords. Consider adding more industry-specific terms.", found)
	case score >= 40:
		feedback = fmt.Sprintf("Moderate keyword usage. Found %d keywords. Add more technical and soft skills.", found)
	default:
		feedback = fmt.Sprintf("Low keyword coverage. Only %d keywords found. Research job descriptions and add relevant skills.", found)
	}

	return Result{Score: score, Feedback: feedback}
}
