// ABOUTME: Draft-stage blog models: research, outline, and verification input.
// ABOUTME: These are stored as JSON blobs and never sent to WordPress directly.

package models

// KeyConcept is a researched term with its definition and why it matters.
type KeyConcept struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Importance string `json:"importance"`
}

// ComparisonOption is one side of a researched comparison.
type ComparisonOption struct {
	Name     string   `json:"name"`
	Pros     []string `json:"pros"`
	Cons     []string `json:"cons"`
	Examples []string `json:"examples"`
}

// ResearchData is the assistant-gathered research for a topic.
type ResearchData struct {
	Topic       string       `json:"topic"`
	Overview    string       `json:"overview"`
	KeyConcepts []KeyConcept `json:"keyConcepts"`
	Comparison  *struct {
		Title   string             `json:"title"`
		Options []ComparisonOption `json:"options"`
	} `json:"comparison,omitempty"`
	BestPractices   []string `json:"bestPractices"`
	CommonQuestions []string `json:"commonQuestions"`
	Sources         []string `json:"sources"`
}

// OutlineSection is one heading of a planned post.
type OutlineSection struct {
	Heading       string           `json:"heading"`
	Level         string           `json:"level"`
	ContentPoints []string         `json:"contentPoints"`
	WordCount     int              `json:"wordCount,omitempty"`
	ImagePrompt   string           `json:"imagePrompt,omitempty"`
	Subsections   []OutlineSection `json:"subsections,omitempty"`
}

// OutlineData is the planned structure of a post before drafting.
type OutlineData struct {
	Title    string           `json:"title"`
	Sections []OutlineSection `json:"sections"`
	SEO      struct {
		MetaDescription string   `json:"metaDescription"`
		FocusKeyword    string   `json:"focusKeyword"`
		Keywords        []string `json:"keywords"`
	} `json:"seo"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// BlogData is the input to structure verification. Taxonomies are names
// here, not ids, because verification runs before reconciliation.
type BlogData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	SEO     *struct {
		MetaDescription string `json:"metaDescription,omitempty"`
		FocusKeyword    string `json:"focusKeyword,omitempty"`
	} `json:"seo,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	FeaturedMedia any      `json:"featuredMedia,omitempty"`
}
