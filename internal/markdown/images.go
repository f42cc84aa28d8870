// ABOUTME: Markdown image reference extraction for content embedding.
// ABOUTME: Matches ![alt](source) references, alt optional.

package markdown

import "regexp"

var imageRefPattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

// ImageRef is one ![alt](source) occurrence, with the full matched text
// preserved for in-place rewriting.
type ImageRef struct {
	Full   string
	Alt    string
	Source string
}

// ExtractImageRefs returns every markdown image reference in order of
// appearance, including repeats.
func ExtractImageRefs(content string) []ImageRef {
	matches := imageRefPattern.FindAllStringSubmatch(content, -1)
	refs := make([]ImageRef, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, ImageRef{Full: m[0], Alt: m[1], Source: m[2]})
	}
	return refs
}

// ImageSources returns the distinct sources referenced in content, in
// first-seen order.
func ImageSources(content string) []string {
	seen := map[string]bool{}
	var sources []string
	for _, ref := range ExtractImageRefs(content) {
		if !seen[ref.Source] {
			seen[ref.Source] = true
			sources = append(sources, ref.Source)
		}
	}
	return sources
}
