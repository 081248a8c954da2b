package render

import (
	"regexp"
	"strings"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// headingPattern matches a markdown heading of level 2-4.
var headingPattern = regexp.MustCompile(`^(#{2,4})\s+(.*)$`)

// ParseIntoBlocks splits an assistant markdown reply into labelled
// sections. Only well-labelled replies get broken into cards: if no
// heading classifies to a key other than answer, the whole trimmed input
// comes back as a single ANSWER block. Empty or whitespace-only input
// yields an empty list.
func ParseIntoBlocks(markdown string) []domain.Section {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	var sections []domain.Section
	current := domain.Section{Title: "Answer", Key: domain.SectionAnswer}
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content != "" {
			current.Content = content
			sections = append(sections, current)
		}
		buf = buf[:0]
	}

	for _, line := range strings.Split(markdown, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			key, title := classifyHeading(m[2])
			current = domain.Section{Title: title, Key: key}
			continue
		}
		buf = append(buf, line)
	}
	flush()

	// Unlabelled free text stays as one block.
	if !hasRecognisedSection(sections) {
		return []domain.Section{{
			Title:   "ANSWER",
			Key:     domain.SectionAnswer,
			Content: strings.TrimSpace(markdown),
		}}
	}

	return sections
}

func hasRecognisedSection(sections []domain.Section) bool {
	for _, s := range sections {
		if s.Key != domain.SectionAnswer {
			return true
		}
	}
	return false
}
