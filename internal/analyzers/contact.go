package analyzers

import (
	"fmt"
	"regexp"
	"strings"
)

type contactItem struct {
	name    string
	pattern *regexp.Regexp
}

var contactItems = []contactItem{
	{"email", regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{"phone", regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)},
	{"linkedin", regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)},
	{"github", regexp.MustCompile(`(?i)github\.com/[\w-]+`)},
}

type contactDetails struct{}

// NewContactDetails checks for email, phone, LinkedIn and GitHub links.
// Each found item is worth a quarter of the score.
func NewContactDetails() Analyzer { return contactDetails{} }

func (contactDetails) Name() string { return "contact_details" }

func (contactDetails) Analyze(text string) Result {
	var found, missing []string
	for _, item := range contactItems {
		if item.pattern.MatchString(text) {
			found = append(found, item.name)
		} else {
			missing = append(missing, item.name)
		}
	}

	score := len(found) * 100 / len(contactItems)
	missingList := strings.Join(missing, ", ")

	var feedback string
	switch {
	case score == 100:
		feedback = "Perfect contact section! All essential details are easily found by recruiters."
	case score >= 75:
		feedback = fmt.Sprintf("Good contact info. Missing: %s.", missingList)
		for _, name := range missing {
			if name == "linkedin" {
				feedback += " Add LinkedIn profile - 87% of recruiters use it for candidate research."
			}
			if name == "github" {
				feedback += " Add GitHub profile to showcase your code and projects."
			}
		}
	case score >= 50:
		feedback = fmt.Sprintf("Incomplete contact details. Add: %s. Make it easy for employers to reach you - missing contact info costs opportunities.", missingList)
	default:
		feedback = fmt.Sprintf("Critical contact info missing: %s. Add these immediately - resumes without proper contact details are often discarded.", missingList)
	}

	return Result{Score: score, Feedback: feedback}
}
