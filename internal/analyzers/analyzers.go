package analyzers

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Result is the outcome of a single heuristic analyzer.
type Result struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Analyzer scores one aspect of a resume text. Implementations are pure:
// same text in, same result out, no shared state.
type Analyzer interface {
	Name() string
	Analyze(text string) Result
}

// All returns every analyzer in its reporting order. The experienced flag
// only affects the length analyzer's ideal word band.
func All(experienced bool) []Analyzer {
	return []Analyzer{
		NewQuantifyImpact(),
		NewUnnecessarySections(),
		NewContactDetails(),
		NewDateConsistency(),
		NewKeywords(),
		NewActionVerbs(),
		NewAchievements(),
		NewLength(experienced),
	}
}

// Select resolves analyzers by name, keeping the canonical reporting order.
// An empty name list selects everything.
func Select(names []string, experienced bool) ([]Analyzer, error) {
	all := All(experienced)
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[strings.TrimSpace(strings.ToLower(name))] = true
	}

	selected := make([]Analyzer, 0, len(all))
	for _, a := range all {
		if wanted[a.Name()] {
			selected = append(selected, a)
			delete(wanted, a.Name())
		}
	}

	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		return nil, fmt.Errorf("unknown analyzers: %s", strings.Join(unknown, ", "))
	}

	return selected, nil
}

// Run executes the analyzers sequentially and collects results by name.
func Run(logger *zap.Logger, text string, steps []Analyzer) map[string]Result {
	results := make(map[string]Result, len(steps))
	for _, step := range steps {
		result := step.Analyze(text)
		results[step.Name()] = result

		if logger != nil {
			logger.Debug("analyzer step",
				zap.String("name", step.Name()),
				zap.Int("score", result.Score),
			)
		}
	}
	return results
}
