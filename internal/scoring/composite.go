package scoring

import (
	"fmt"
	"math"
)

// Regime selects the weighting applied when combining sub-scores.
type Regime int

const (
	// RegimeDefault is used when no job description is supplied: presence,
	// order, content, grammar and length all contribute.
	RegimeDefault Regime = iota
	// RegimeJobDescription is used when a target job description is
	// available and a tailoring score replaces grammar/length.
	RegimeJobDescription
	// RegimeSimple is a documented legacy variant weighing only presence,
	// order and content.
	RegimeSimple
)

func (r Regime) String() string {
	switch r {
	case RegimeDefault:
		return "default"
	case RegimeJobDescription:
		return "job_description"
	case RegimeSimple:
		return "simple"
	default:
		return fmt.Sprintf("regime(%d)", int(r))
	}
}

// Inputs carries all constituent scores for aggregation. Presence, Content,
// Grammar, Tailoring and Length are on a 0-100 scale; Order is on the 0-10
// catalog scale and is normalized internally. Externally supplied scores
// that are missing must be passed as 0 so the composite stays computable.
type Inputs struct {
	Presence  int
	Order     int
	Content   int
	Grammar   int
	Tailoring int
	Length    int
}

// A content score below this threshold signals a degenerate or empty
// analysis, in which case grammar must not add noise.
const grammarGuardThreshold = 10

// Composite combines the sub-scores into a single 0-100 value under the
// chosen regime, capped at 100 and rounded to 2 decimal places.
func Composite(in Inputs, regime Regime) float64 {
	order := float64(in.Order) * 10 // 0-10 catalog scale to 0-100

	grammar := float64(in.Grammar)
	if in.Content < grammarGuardThreshold {
		grammar = 0
	}

	var total float64
	switch regime {
	case RegimeJobDescription:
		total = float64(in.Presence)*0.25 +
			order*0.20 +
			float64(in.Content)*0.25 +
			float64(in.Tailoring)*0.30
	case RegimeSimple:
		total = float64(in.Presence)*0.35 +
			order*0.30 +
			float64(in.Content)*0.35
	default:
		total = float64(in.Presence)*0.15 +
			order*0.15 +
			float64(in.Content)*0.60 +
			grammar*0.06 +
			float64(in.Length)*0.09
	}

	if total > 100 {
		total = 100
	}

	return math.Round(total*100) / 100
}
