package analyzers

import (
	"fmt"
	"strings"
)

// Strong action verbs a bullet should lead with.
var actionVerbs = map[string]bool{
	"achieved": true, "analyzed": true, "built": true, "created": true,
	"delivered": true, "developed": true, "designed": true, "established": true,
	"executed": true, "generated": true, "improved": true, "increased": true,
	"launched": true, "led": true, "managed": true, "optimized": true,
	"organized": true, "planned": true, "reduced": true, "streamlined": true,
	"supervised": true, "transformed": true, "accelerated": true,
	"accomplished": true, "adapted": true, "administered": true, "advised": true,
	"collaborated": true, "coordinated": true, "directed": true, "enhanced": true,
	"facilitated": true, "implemented": true, "initiated": true, "innovated": true,
	"integrated": true, "motivated": true, "negotiated": true, "overcame": true,
	"pioneered": true, "resolved": true, "spearheaded": true,
}

type actionVerbsAnalyzer struct{}

// NewActionVerbs scores the fraction of bullets whose first word is a
// strong action verb.
func NewActionVerbs() Analyzer { return actionVerbsAnalyzer{} }

func (actionVerbsAnalyzer) Name() string { return "action_verbs" }

func (actionVerbsAnalyzer) Analyze(text string) Result {
	bullets := extractBullets(text)
	if len(bullets) == 0 {
		return Result{
			Score:    0,
			Feedback: "No bullet points found. Use bullet points starting with strong action verbs.",
		}
	}

	leading := 0
	for _, bullet := range bullets {
		fields := strings.Fields(bullet)
		if len(fields) == 0 {
			continue
		}
		if actionVerbs[strings.ToLower(fields[0])] {
			leading++
		}
	}

	score := leading * 100 / len(bullets)
	if score > 100 {
		score = 100
	}

	var feedback string
	switch {
	case score >= 80:
		feedback = fmt.Sprintf("Excellent! %d/%d bullet points start with strong action verbs.", leading, len(bullets))
	case score >= 60:
		feedback = fmt.Sprintf("Good use of action verbs. %d/%d bullets start with strong verbs. Try to improve more.", leading, len(bullets))
	case score >= 40:
		feedback = fmt.Sprintf("Some action verbs used. %d/%d bullets start with action verbs. Replace weak starts with power verbs.", leading, len(bullets))
	default:
		feedback = fmt.Sprintf("Weak action verb usage. Only %d/%d bullets start with action verbs. Begin bullets with achieved, developed, led, etc.", leading, len(bullets))
	}

	return Result{Score: score, Feedback: feedback}
}
