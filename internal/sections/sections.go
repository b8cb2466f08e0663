package sections

// Section is a canonical resume content category.
type Section string

const (
	ContactInfo     Section = "Contact Info"
	LinkedIn        Section = "LinkedIn"
	GitHubPortfolio Section = "GitHub/Portfolio"
	Education       Section = "Education"
	Skills          Section = "Skills"
	WorkExperience  Section = "Work Experience"
	Projects        Section = "Projects"
	Certifications  Section = "Certifications"
	Summary         Section = "Summary"
	Awards          Section = "Awards"
	Activities      Section = "Activities"
	Internships     Section = "Internships"
)

// CatalogEntry binds a section to the keywords used for detecting it.
type CatalogEntry struct {
	Section  Section
	Keywords []string
}

// Catalog lists the detectable sections. The slice order is load-bearing:
// Detect scans it top to bottom and the detected sequence inherits this
// order, which downstream ordering scores depend on.
var Catalog = []CatalogEntry{
	{ContactInfo, []string{"email", "phone", "contact", "mobile", "personal details"}},
	{LinkedIn, []string{"linkedin", "linkedin.com"}},
	{GitHubPortfolio, []string{"github", "portfolio", "website", "behance", "dribbble"}},
	{Education, []string{"education", "b.tech", "m.tech", "academic", "university", "degree"}},
	{Skills, []string{"skills", "technologies", "tools", "frameworks", "languages"}},
	{WorkExperience, []string{"experience", "work experience", "internship", "employment", "career"}},
	{Projects, []string{"projects", "developed", "built", "created", "implemented", "designed"}},
	{Certifications, []string{"certified", "certification", "course", "training", "license"}},
	{Summary, []string{"objective", "summary", "about me", "profile summary"}},
	{Awards, []string{"awards", "honors", "recognition", "accomplishments"}},
	{Activities, []string{"volunteer", "extracurricular", "activities", "leadership"}},
}

// Weights holds the presence points awarded per section. Awards and
// Activities are optional bonus sections and carry no points. Internships
// has a weight but no detection keywords of its own; it is only reachable
// through ideal-order data.
var Weights = map[Section]int{
	Summary:         5,
	ContactInfo:     5,
	LinkedIn:        5,
	GitHubPortfolio: 5,
	Education:       15,
	Skills:          15,
	WorkExperience:  20,
	Internships:     10,
	Projects:        10,
	Certifications:  5,
	Awards:          0,
	Activities:      0,
}

// Labels converts a section sequence to its plain string labels.
func Labels(secs []Section) []string {
	labels := make([]string, 0, len(secs))
	for _, s := range secs {
		labels = append(labels, string(s))
	}
	return labels
}
