package analyzers

import (
	"strings"
	"testing"
)

func TestUnnecessarySections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantScore int
	}{
		{
			name:      "clean resume",
			text:      "Summary\nExperience\nSkills",
			wantScore: 100,
		},
		{
			name:      "one finding",
			text:      "Objective\nTo obtain a challenging position.",
			wantScore: 75,
		},
		{
			name:      "penalty saturates",
			text:      "Objective\nReferences\nHobbies\nInterests\nPersonal Statement",
			wantScore: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := NewUnnecessarySections().Analyze(tt.text)
			if result.Score != tt.wantScore {
				t.Fatalf("expected score %d, got %d (%q)", tt.wantScore, result.Score, result.Feedback)
			}
		})
	}
}

func TestUnnecessarySectionsAdvice(t *testing.T) {
	t.Parallel()

	result := NewUnnecessarySections().Analyze("Objective: a role in data engineering.")
	if !strings.Contains(result.Feedback, "professional summary") {
		t.Fatalf("expected replacement advice for the objective section, got %q", result.Feedback)
	}

	result = NewUnnecessarySections().Analyze("Hobbies: chess and hiking.")
	if !strings.Contains(result.Feedback, "certifications or volunteer work") {
		t.Fatalf("expected replacement advice for the hobbies section, got %q", result.Feedback)
	}
}
