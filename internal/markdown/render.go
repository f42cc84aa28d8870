// ABOUTME: Markdown to HTML rendering for post content.
// ABOUTME: GFM with raw HTML passthrough, matching what WordPress expects.

package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	// Blog drafts legitimately mix raw HTML into markdown; WordPress applies
	// its own server-side sanitization on write.
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// ToHTML converts markdown content to HTML.
func ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
