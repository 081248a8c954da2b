package domain

// SectionKey is the semantic classification of a parsed block of
// assistant text.
type SectionKey string

const (
	// SectionOverview is a high-level summary block.
	SectionOverview SectionKey = "overview"
	// SectionKeyPoints lists the key issues or points.
	SectionKeyPoints SectionKey = "key_points"
	// SectionImportantTerms lists defined terms.
	SectionImportantTerms SectionKey = "important_terms"
	// SectionSources lists cited authorities.
	SectionSources SectionKey = "sources"
	// SectionAnswer is unclassified answer text.
	SectionAnswer SectionKey = "answer"
)

// Section is one labelled block of an assistant reply, derived on every
// render and never persisted.
type Section struct {
	// Title is the display label, e.g. "OVERVIEW".
	Title string
	// Key is the semantic classification.
	Key SectionKey
	// Content is the raw markdown body of the block.
	Content string
}
