package render

import (
	"strings"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// classRule maps heading keywords to a semantic section key and its fixed
// display title. Rules are evaluated top to bottom; the first rule whose
// any keyword appears in the heading wins.
type classRule struct {
	keywords []string
	key      domain.SectionKey
	display  string
}

var classRules = []classRule{
	{[]string{"overview"}, domain.SectionOverview, "OVERVIEW"},
	{[]string{"key issues", "key points"}, domain.SectionKeyPoints, "KEY POINTS"},
	{[]string{"important terms", "definitions"}, domain.SectionImportantTerms, "IMPORTANT TERMS"},
	{[]string{"sources"}, domain.SectionSources, "SOURCES"},
}

// classifyHeading returns the section key and display title for a heading
// text. Unrecognised headings keep their literal text under the answer
// key.
func classifyHeading(heading string) (domain.SectionKey, string) {
	lower := strings.ToLower(heading)
	for _, rule := range classRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.key, rule.display
			}
		}
	}
	title := strings.TrimSpace(heading)
	if title == "" {
		title = "Answer"
	}
	return domain.SectionAnswer, title
}
