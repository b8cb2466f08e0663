package sections

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultFuzzyThreshold is the minimum partial-ratio similarity (0-100)
// required for a keyword to count as present.
const DefaultFuzzyThreshold = 75

// Detect returns the sections whose keywords appear as substrings of the
// text. The result is duplicate-free and ordered by the catalog definition
// order, not by where the keywords occur in the document. The first matching
// keyword settles a section; the rest of its keywords are not scanned.
func Detect(text string) []Section {
	lower := strings.ToLower(text)

	found := make([]Section, 0, len(Catalog))
	for _, entry := range Catalog {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				found = append(found, entry.Section)
				break
			}
		}
	}

	return found
}

// HasFuzzyMatch reports whether any keyword reaches the threshold
// partial-ratio similarity against the text. This tolerates minor spelling
// and OCR variation in section headers that the exact detector misses.
func HasFuzzyMatch(text string, keywords []string, threshold int) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if fuzzy.PartialRatio(strings.ToLower(keyword), lower) >= threshold {
			return true
		}
	}
	return false
}

// PresenceScore sums the weights of all sections with a fuzzy keyword hit.
// It is computed independently from Detect and may disagree with it on
// borderline headers; both paths are kept for score stability.
func PresenceScore(text string) int {
	score := 0
	for _, entry := range Catalog {
		if HasFuzzyMatch(text, entry.Keywords, DefaultFuzzyThreshold) {
			score += Weights[entry.Section]
		}
	}
	return score
}
