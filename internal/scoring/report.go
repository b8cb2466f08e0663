package scoring

import "github.com/upendrajamana/PerfectFitAI07/internal/analyzers"

// OracleFeedback carries one review returned by the external
// content-feedback oracle. Scored is false when no numeric score could be
// parsed out of the prose (the score then contributes 0 to the composite).
type OracleFeedback struct {
	Score    int    `json:"score"`
	Scored   bool   `json:"scored"`
	Feedback string `json:"feedback,omitempty"`
}

// Report is the full outcome of one scoring pass.
type Report struct {
	DetectedSections  []string                     `json:"detected_sections"`
	PresenceScore     int                          `json:"presence_score"`
	OrderScore        int                          `json:"order_score"`
	BestMatchingOrder []string                     `json:"best_matching_order,omitempty"`
	LengthScore       int                          `json:"length_score"`
	Analyzers         map[string]analyzers.Result  `json:"analyzers"`
	Content           *OracleFeedback              `json:"content,omitempty"`
	Grammar           *OracleFeedback              `json:"grammar,omitempty"`
	Tailoring         *OracleFeedback              `json:"tailoring,omitempty"`
	Formatting        string                       `json:"formatting,omitempty"`
	Regime            string                       `json:"regime"`
	Composite         float64                      `json:"composite"`
}

// CompositeInputs maps the report onto aggregation inputs. Missing oracle
// feedback contributes 0, never an error.
func (r *Report) CompositeInputs() Inputs {
	in := Inputs{
		Presence: r.PresenceScore,
		Order:    r.OrderScore,
		Length:   r.LengthScore,
	}
	if r.Content != nil && r.Content.Scored {
		in.Content = r.Content.Score
	}
	if r.Grammar != nil && r.Grammar.Scored {
		in.Grammar = r.Grammar.Score
	}
	if r.Tailoring != nil && r.Tailoring.Scored {
		in.Tailoring = r.Tailoring.Score
	}
	return in
}
