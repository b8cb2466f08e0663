package ordering

import "github.com/upendrajamana/PerfectFitAI07/internal/sections"

// Floor is the minimum order score. An earlier revision of the scoring
// rules floored at 6, which handed a free passing grade to resumes with no
// recognizable layout at all; the floor is 0 now and the 0-10 catalog scale
// is normalized by the aggregator.
const Floor = 0

// Score rates the detected section sequence against the ideal-order
// catalog. Every entry is scored by LCS similarity with near-miss tiers: a
// full subsequence containment earns the entry's score, one missing element
// costs a point, two cost two, and anything further contributes nothing.
// The returned order is the one from the entry whose post-penalty score
// won; on ties the earliest catalog entry is kept.
func Score(detected []sections.Section) (int, []string) {
	labels := sections.Labels(detected)

	orderScore := Floor
	var bestOrder []string

	for _, entry := range Catalog() {
		lcs := LCS(entry.Order, labels)

		candidate := -1
		switch {
		case lcs == len(entry.Order):
			candidate = entry.Score
		case lcs >= len(entry.Order)-1:
			candidate = entry.Score - 1
		case lcs >= len(entry.Order)-2:
			candidate = entry.Score - 2
		}

		if candidate > orderScore {
			orderScore = candidate
			bestOrder = entry.Order
		}
	}

	return orderScore, bestOrder
}
