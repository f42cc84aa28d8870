// ABOUTME: Terminal UI formatting for presskit CLI output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/harper/presskit/internal/blog"
	"github.com/harper/presskit/internal/models"
	"github.com/harper/presskit/internal/wp"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func FormatPostRef(ref *models.PostRef) string {
	action := "Created"
	if ref.IsUpdate {
		action = "Updated"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s post %s\n", green(action), bold(fmt.Sprintf("#%d", ref.ID))))
	if ref.Link != "" {
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint("Link:"), cyan(ref.Link)))
	}
	return sb.String()
}

func FormatMediaItem(media *wp.Media) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(fmt.Sprintf("#%d", media.ID)), bold(media.SourceURL)))
	if media.AltText != "" {
		sb.WriteString(fmt.Sprintf("        %s %s\n", faint("Alt:"), media.AltText))
	}
	return sb.String()
}

func FormatCategoryList(categories []wp.Category) string {
	var sb strings.Builder
	for _, c := range categories {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			faint(fmt.Sprintf("%4d", c.ID)),
			cyan(c.Name),
			faint(fmt.Sprintf("(%d posts)", c.Count))))
	}
	return sb.String()
}

func FormatTagList(tags []wp.Tag) string {
	var sb strings.Builder
	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			faint(fmt.Sprintf("%4d", t.ID)),
			cyan(t.Name),
			faint(fmt.Sprintf("(%d posts)", t.Count))))
	}
	return sb.String()
}

func FormatVerifyReport(report *blog.Report) string {
	var sb strings.Builder

	scoreColor := green
	switch {
	case report.Score < 60:
		scoreColor = red
	case report.Score < 90:
		scoreColor = yellow
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", bold("Score:"), scoreColor(fmt.Sprintf("%d/100", report.Score))))

	if report.IsValid {
		sb.WriteString(fmt.Sprintf("%s\n", green("Draft is structurally valid")))
	} else {
		sb.WriteString(fmt.Sprintf("%s\n", red("Draft has blocking problems")))
	}

	for _, e := range report.Errors {
		sb.WriteString(fmt.Sprintf("  %s %s\n", red("error"), e))
	}
	for _, w := range report.Warnings {
		sb.WriteString(fmt.Sprintf("  %s %s\n", yellow("warn"), w))
	}
	for _, s := range report.Suggestions {
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint("hint"), s))
	}

	sb.WriteString(fmt.Sprintf("\n%s %d words, %d categories, %d tags\n",
		faint("Measured:"), report.Details.WordCount,
		report.Details.CategoryCount, report.Details.TagCount))

	return sb.String()
}

func FormatDraftListItem(recordType, id string) string {
	return fmt.Sprintf("  %s  %s\n", faint(recordType), bold(id))
}

func FormatMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}
