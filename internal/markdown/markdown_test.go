// ABOUTME: Tests for markdown rendering, front matter, and image extraction.
// ABOUTME: Pure string-in/string-out checks.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	html, err := ToHTML("# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("unexpected html output: %s", html)
	}
}

func TestToHTMLTable(t *testing.T) {
	html, err := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("expected GFM table rendering, got: %s", html)
	}
}

func TestToHTMLRawHTMLPassthrough(t *testing.T) {
	html, err := ToHTML("before\n\n<div class=\"callout\">hi</div>\n\nafter")
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	if !strings.Contains(html, `<div class="callout">`) {
		t.Errorf("raw html should pass through, got: %s", html)
	}
}

func TestSplitFrontMatter(t *testing.T) {
	content := "---\ntitle: My Post\ntags:\n  - go\n  - blog\n---\n# Body\n"
	meta, body := SplitFrontMatter(content)
	if meta == nil {
		t.Fatal("expected front matter to parse")
	}
	if meta["title"] != "My Post" {
		t.Errorf("expected title, got %v", meta["title"])
	}
	if !strings.HasPrefix(body, "# Body") {
		t.Errorf("expected body after front matter, got %q", body)
	}
}

func TestSplitFrontMatterAbsent(t *testing.T) {
	content := "# Just a heading\n"
	meta, body := SplitFrontMatter(content)
	if meta != nil {
		t.Errorf("expected no front matter, got %v", meta)
	}
	if body != content {
		t.Errorf("body should be unchanged, got %q", body)
	}
}

func TestSplitFrontMatterMalformed(t *testing.T) {
	content := "---\n: : :\n---\nbody"
	meta, body := SplitFrontMatter(content)
	if meta != nil {
		t.Errorf("malformed front matter should not parse, got %v", meta)
	}
	if body != content {
		t.Errorf("malformed front matter should leave content untouched")
	}
}

func TestExtractImageRefs(t *testing.T) {
	content := "intro ![first](https://a/1.png) middle ![](local/2.jpg) ![first](https://a/1.png)"
	refs := ExtractImageRefs(content)
	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %d", len(refs))
	}
	if refs[0].Alt != "first" || refs[0].Source != "https://a/1.png" {
		t.Errorf("unexpected first ref: %+v", refs[0])
	}
	if refs[1].Alt != "" || refs[1].Source != "local/2.jpg" {
		t.Errorf("unexpected second ref: %+v", refs[1])
	}

	sources := ImageSources(content)
	if len(sources) != 2 {
		t.Errorf("expected 2 distinct sources, got %v", sources)
	}
}
