package ordering

import (
	"reflect"
	"testing"

	"github.com/upendrajamana/PerfectFitAI07/internal/sections"
)

func TestScoreExactCatalogMatch(t *testing.T) {
	t.Parallel()

	// Matches a catalog entry with score 10 as a full ordered sequence.
	detected := []sections.Section{
		sections.Summary,
		sections.Education,
		sections.Projects,
		sections.Skills,
		sections.Certifications,
	}

	score, best := Score(detected)
	if score != 10 {
		t.Fatalf("expected order score 10 for an exact ideal layout, got %d", score)
	}
	if len(best) == 0 {
		t.Fatalf("expected a best matching order to be reported")
	}
}

func TestScoreNearMissTier(t *testing.T) {
	t.Parallel()

	// One section short of the 4-element score-10 entry: full containment is
	// impossible (every entry has at least 4 sections), so the best
	// achievable is 10-1 through the one-missing tier.
	detected := []sections.Section{
		sections.Education,
		sections.Projects,
		sections.Skills,
	}

	score, best := Score(detected)
	if score != 9 {
		t.Fatalf("expected order score 9, got %d", score)
	}

	want := []string{"Education", "Projects", "Skills", "Certifications"}
	if !reflect.DeepEqual(best, want) {
		t.Fatalf("expected best matching order %v, got %v", want, best)
	}
}

func TestScoreEmptyDetected(t *testing.T) {
	t.Parallel()

	score, best := Score(nil)
	if score != Floor {
		t.Fatalf("expected floor score %d for empty input, got %d", Floor, score)
	}
	if best != nil {
		t.Fatalf("expected no best matching order for empty input, got %v", best)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	t.Parallel()

	inputs := [][]sections.Section{
		nil,
		{sections.Awards},
		{sections.ContactInfo, sections.LinkedIn, sections.GitHubPortfolio},
		{sections.Certifications, sections.Skills, sections.Projects, sections.Education, sections.Summary},
		{
			sections.ContactInfo, sections.LinkedIn, sections.GitHubPortfolio,
			sections.Education, sections.Skills, sections.WorkExperience,
			sections.Projects, sections.Certifications, sections.Summary,
			sections.Awards, sections.Activities,
		},
	}

	for _, detected := range inputs {
		score, _ := Score(detected)
		if score < Floor || score > 10 {
			t.Fatalf("order score %d out of [%d, 10] for %v", score, Floor, detected)
		}
	}
}

func TestScoreIdempotent(t *testing.T) {
	t.Parallel()

	detected := []sections.Section{sections.Summary, sections.Education, sections.Skills}

	score1, best1 := Score(detected)
	score2, best2 := Score(detected)

	if score1 != score2 || !reflect.DeepEqual(best1, best2) {
		t.Fatalf("Score is not deterministic: (%d, %v) vs (%d, %v)", score1, best1, score2, best2)
	}
}
