// ABOUTME: Tests for terminal UI formatting functions.
// ABOUTME: Validates post, taxonomy, and verification report display.

package ui

import (
	"strings"
	"testing"

	"github.com/harper/presskit/internal/blog"
	"github.com/harper/presskit/internal/models"
	"github.com/harper/presskit/internal/wp"
)

func TestFormatPostRef(t *testing.T) {
	output := FormatPostRef(&models.PostRef{ID: 42, Link: "https://example.com/?p=42"})

	if !strings.Contains(output, "Created") {
		t.Error("expected output to report a create")
	}
	if !strings.Contains(output, "#42") {
		t.Error("expected output to contain post id")
	}
	if !strings.Contains(output, "https://example.com/?p=42") {
		t.Error("expected output to contain link")
	}

	updated := FormatPostRef(&models.PostRef{ID: 42, IsUpdate: true})
	if !strings.Contains(updated, "Updated") {
		t.Error("expected output to report an update")
	}
}

func TestFormatCategoryList(t *testing.T) {
	categories := []wp.Category{
		{ID: 3, Name: "Tech", Count: 12},
		{ID: 9, Name: "Releases", Count: 4},
	}

	output := FormatCategoryList(categories)

	if !strings.Contains(output, "Tech") || !strings.Contains(output, "Releases") {
		t.Error("expected output to contain category names")
	}
	if !strings.Contains(output, "12 posts") {
		t.Error("expected output to contain post counts")
	}
}

func TestFormatVerifyReport(t *testing.T) {
	report := &blog.Report{
		IsValid:     false,
		Score:       45,
		Errors:      []string{"Title is missing"},
		Warnings:    []string{"No categories assigned"},
		Suggestions: []string{"Add at least 3-5 tags for better discoverability"},
		Details:     blog.Details{WordCount: 250},
	}

	output := FormatVerifyReport(report)

	if !strings.Contains(output, "45/100") {
		t.Error("expected output to contain score")
	}
	if !strings.Contains(output, "Title is missing") {
		t.Error("expected output to contain errors")
	}
	if !strings.Contains(output, "250 words") {
		t.Error("expected output to contain measured word count")
	}
}

func TestFormatMarkdown(t *testing.T) {
	output, err := FormatMarkdown("# Hello\n\nThis is **bold** text.")
	if err != nil {
		t.Fatalf("failed to format content: %v", err)
	}
	if output == "" {
		t.Error("expected non-empty output")
	}
}
