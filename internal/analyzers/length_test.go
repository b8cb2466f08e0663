package analyzers

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestLengthScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		wordCount   int
		experienced bool
		want        int
	}{
		{name: "entry level inside band", wordCount: 500, want: 100},
		{name: "entry level lower bound", wordCount: 400, want: 100},
		{name: "entry level upper bound", wordCount: 600, want: 100},
		{name: "entry level 100 short", wordCount: 300, want: 50},
		{name: "entry level 100 long", wordCount: 700, want: 50},
		{name: "entry level far off", wordCount: 50, want: 0},
		{name: "experienced inside band", wordCount: 850, experienced: true, want: 100},
		{name: "experienced too short", wordCount: 600, experienced: true, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := LengthScore(words(tt.wordCount), tt.experienced)
			if got != tt.want {
				t.Fatalf("LengthScore(%d words, experienced=%v) = %d, want %d",
					tt.wordCount, tt.experienced, got, tt.want)
			}
		})
	}
}

func TestLengthScoreEmpty(t *testing.T) {
	t.Parallel()

	if got := LengthScore("", false); got != 0 {
		t.Fatalf("expected 0 for empty text, got %d", got)
	}
	if got := LengthScore("   \n\t", true); got != 0 {
		t.Fatalf("expected 0 for whitespace-only text, got %d", got)
	}
}

func TestLengthAnalyzerFeedback(t *testing.T) {
	t.Parallel()

	result := NewLength(false).Analyze(words(500))
	if result.Score != 100 {
		t.Fatalf("expected score 100, got %d", result.Score)
	}
	if !strings.Contains(result.Feedback, "400-600") {
		t.Fatalf("expected the entry-level band in feedback, got %q", result.Feedback)
	}

	result = NewLength(true).Analyze(words(850))
	if result.Score != 100 {
		t.Fatalf("expected score 100, got %d", result.Score)
	}
	if !strings.Contains(result.Feedback, "700-1000") {
		t.Fatalf("expected the experienced band in feedback, got %q", result.Feedback)
	}
}
