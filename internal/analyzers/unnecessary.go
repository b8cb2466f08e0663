package analyzers

import (
	"fmt"
	"strings"
)

// Section names that waste space on a modern resume.
var unnecessarySections = []string{
	"objective",
	"references",
	"hobbies",
	"interests",
	"personal statement",
	"career objective",
	"personal interests",
	"references available upon request",
}

type unnecessarySectionsAnalyzer struct{}

// NewUnnecessarySections flags low-value sections, deducting 25 points per
// finding with the penalty saturating at 80 and the score floored at 20.
func NewUnnecessarySections() Analyzer { return unnecessarySectionsAnalyzer{} }

func (unnecessarySectionsAnalyzer) Name() string { return "unnecessary_sections" }

func (unnecessarySectionsAnalyzer) Analyze(text string) Result {
	lower := strings.ToLower(text)

	var found []string
	for _, section := range unnecessarySections {
		if strings.Contains(lower, section) {
			found = append(found, titleCase(section))
		}
	}

	if len(found) == 0 {
		return Result{
			Score:    100,
			Feedback: "Perfect! No space-wasting sections found. Your resume focuses on relevant content.",
		}
	}

	penalty := len(found) * 25
	if penalty > 80 {
		penalty = 80
	}
	score := 100 - penalty
	if score < 20 {
		score = 20
	}

	feedback := fmt.Sprintf("Remove these sections to save space: %s.", strings.Join(found, ", "))
	lowerFound := strings.ToLower(strings.Join(found, " "))
	if strings.Contains(lowerFound, "objective") {
		feedback += " Instead of 'Objective': Use a professional summary with specific achievements."
	}
	if strings.Contains(lowerFound, "references") {
		feedback += " Instead of 'References': Add more work experience or technical skills."
	}
	if strings.Contains(lowerFound, "hobbies") || strings.Contains(lowerFound, "interests") {
		feedback += " Instead of 'Hobbies': Include relevant certifications or volunteer work."
	}

	return Result{Score: score, Feedback: feedback}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
