package analyzers

import (
	"strings"
	"testing"
)

func TestAchievementsBalancedRatio(t *testing.T) {
	t.Parallel()

	// One achievement against one generic phrase.
	text := "Increased revenue by 30%. Responsible for vendor onboarding."

	result := NewAchievements().Analyze(text)
	if result.Score != 50 {
		t.Fatalf("expected score 50 for a 1:1 ratio, got %d (%q)", result.Score, result.Feedback)
	}
}

func TestAchievementsOnly(t *testing.T) {
	t.Parallel()

	text := "Increased sales by 20%. Promoted after one year. Generated $2M in new contracts."

	result := NewAchievements().Analyze(text)
	if result.Score != 100 {
		t.Fatalf("expected score 100, got %d (%q)", result.Score, result.Feedback)
	}
}

func TestAchievementsGenericOnly(t *testing.T) {
	t.Parallel()

	text := "Responsible for reporting. Duties include filing. Worked on tickets."

	result := NewAchievements().Analyze(text)
	if result.Score != 0 {
		t.Fatalf("expected score 0, got %d (%q)", result.Score, result.Feedback)
	}
	if !strings.Contains(result.Feedback, "generic responsibility") {
		t.Fatalf("unexpected feedback: %q", result.Feedback)
	}
}

func TestAchievementsNeutralWhenNothingMatches(t *testing.T) {
	t.Parallel()

	result := NewAchievements().Analyze("A plain summary paragraph.")
	if result.Score != 50 {
		t.Fatalf("expected neutral score 50, got %d", result.Score)
	}
	if !strings.Contains(result.Feedback, "specific examples") {
		t.Fatalf("unexpected feedback: %q", result.Feedback)
	}
}
