package ai

import "testing"

func TestExtractScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		wantScore  int
		wantScored bool
	}{
		{
			name:       "explicit slash notation",
			text:       "Overall Score: 85/100. Strong resume.",
			wantScore:  85,
			wantScored: true,
		},
		{
			name:       "slash notation with spaces",
			text:       "I would rate this 72 / 100.",
			wantScore:  72,
			wantScored: true,
		},
		{
			name:       "low slash score",
			text:       "Score: 42/100",
			wantScore:  42,
			wantScored: true,
		},
		{
			name:       "bare number fallback",
			text:       "Overall this deserves a 60 for content quality.",
			wantScore:  60,
			wantScored: true,
		},
		{
			name:       "wrong denominator ignored",
			text:       "Score: 9/10",
			wantScore:  0,
			wantScored: false,
		},
		{
			// 110 is rejected by the slash branch; the bare fallback then
			// picks up the denominator.
			name:       "out of range slash value falls back",
			text:       "Score: 110/100",
			wantScore:  100,
			wantScored: true,
		},
		{
			name:       "no numbers at all",
			text:       "The resume reads well but lacks measurable impact.",
			wantScore:  0,
			wantScored: false,
		},
		{
			name:       "empty text",
			text:       "",
			wantScore:  0,
			wantScored: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, scored := ExtractScore(tt.text)
			if score != tt.wantScore || scored != tt.wantScored {
				t.Fatalf("ExtractScore(%q) = (%d, %v), want (%d, %v)",
					tt.text, score, scored, tt.wantScore, tt.wantScored)
			}
		})
	}
}

func TestExtractScorePrefersSlashNotation(t *testing.T) {
	t.Parallel()

	// A bare 90 appears first but the explicit notation wins.
	score, scored := ExtractScore("The top resumes score 90 or more; this one gets 65/100.")
	if !scored || score != 65 {
		t.Fatalf("expected (65, true), got (%d, %v)", score, scored)
	}
}
