package analyzers

import "regexp"

// Bullet lines start with a bullet glyph, dash, asterisk or digits,
// optionally followed by a dot. The capture group is the bullet body.
var bulletPattern = regexp.MustCompile(`(?m)^\s*[•\-\*\d]+\.?\s+(.+)$`)

func extractBullets(text string) []string {
	matches := bulletPattern.FindAllStringSubmatch(text, -1)
	bullets := make([]string, 0, len(matches))
	for _, m := range matches {
		bullets = append(bullets, m[1])
	}
	return bullets
}
