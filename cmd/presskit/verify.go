// ABOUTME: Verify command scoring a markdown file before publishing.
// ABOUTME: Front matter supplies the metadata the scorer checks.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/presskit/internal/blog"
	"github.com/harper/presskit/internal/markdown"
	"github.com/harper/presskit/internal/models"
	"github.com/harper/presskit/internal/ui"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Score a markdown draft for structure and SEO readiness",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		front, body := markdown.SplitFrontMatter(string(data))

		draft := &models.BlogData{
			Title:      frontString(front, "title"),
			Content:    body,
			Categories: frontStrings(front, "categories"),
			Tags:       frontStrings(front, "tags"),
		}
		if v := frontString(front, "featuredImage"); v != "" {
			draft.FeaturedMedia = v
		}
		metaDesc := frontString(front, "metaDescription")
		keyword := frontString(front, "focusKeyword")
		if metaDesc != "" || keyword != "" {
			draft.SEO = &struct {
				MetaDescription string `json:"metaDescription,omitempty"`
				FocusKeyword    string `json:"focusKeyword,omitempty"`
			}{MetaDescription: metaDesc, FocusKeyword: keyword}
		}

		report := blog.Verify(draft)
		fmt.Print(ui.FormatVerifyReport(report))
		if !report.IsValid {
			return fmt.Errorf("draft has blocking problems")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
