package scoring

import "testing"

func TestCompositeInputs(t *testing.T) {
	t.Parallel()

	report := &Report{
		PresenceScore: 80,
		OrderScore:    7,
		LengthScore:   100,
		Content:       &OracleFeedback{Score: 70, Scored: true},
		Grammar:       &OracleFeedback{Score: 90, Scored: true},
		Tailoring:     &OracleFeedback{Score: 60, Scored: true},
	}

	in := report.CompositeInputs()
	want := Inputs{Presence: 80, Order: 7, Content: 70, Grammar: 90, Tailoring: 60, Length: 100}
	if in != want {
		t.Fatalf("CompositeInputs() = %+v, want %+v", in, want)
	}
}

func TestCompositeInputsMissingFeedback(t *testing.T) {
	t.Parallel()

	report := &Report{
		PresenceScore: 80,
		OrderScore:    7,
		LengthScore:   100,
		// Feedback without a parseable score contributes nothing.
		Content: &OracleFeedback{Score: 70, Scored: false},
	}

	in := report.CompositeInputs()
	if in.Content != 0 || in.Grammar != 0 || in.Tailoring != 0 {
		t.Fatalf("unscored feedback must contribute 0, got %+v", in)
	}
	if in.Presence != 80 || in.Order != 7 || in.Length != 100 {
		t.Fatalf("locally computed scores must pass through, got %+v", in)
	}
}
