// ABOUTME: Post command publishing a markdown file through the full pipeline.
// ABOUTME: Front matter carries title, taxonomy names, and SEO fields.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/presskit/internal/config"
	"github.com/harper/presskit/internal/markdown"
	"github.com/harper/presskit/internal/models"
	"github.com/harper/presskit/internal/publisher"
	"github.com/harper/presskit/internal/ui"
)

var postCmd = &cobra.Command{
	Use:   "post <file>",
	Short: "Publish a markdown file",
	Long: `Publish a markdown file to WordPress. A leading YAML front matter
block supplies title, slug, status, excerpt, categories, tags,
featuredImage, metaDescription, and focusKeyword. Category and tag
names are reconciled against the site; referenced images are uploaded
per configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		statusFlag, _ := cmd.Flags().GetString("status")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		front, body := markdown.SplitFrontMatter(string(data))

		input := inputFromFrontMatter(front, body)
		if statusFlag != "" {
			input.Status = statusFlag
		}
		if input.Title == "" {
			return fmt.Errorf("no title: add a front matter title to %s", args[0])
		}

		result, err := pub.CompleteBlog(cmd.Context(), input)
		if err != nil {
			return err
		}

		fmt.Print(ui.FormatPostRef(result.Post))
		for _, term := range result.CreatedTerms {
			fmt.Printf("  created %s\n", term)
		}
		if len(result.EmbeddedImages) > 0 {
			fmt.Printf("  embedded %d image(s)\n", len(result.EmbeddedImages))
		}
		if result.FeaturedMediaID != 0 {
			fmt.Printf("  featured media #%d\n", result.FeaturedMediaID)
		}
		return nil
	},
}

func inputFromFrontMatter(front map[string]any, body string) *publisher.CompleteBlogInput {
	input := &publisher.CompleteBlogInput{
		Title:         frontString(front, "title"),
		Content:       body,
		Excerpt:       frontString(front, "excerpt"),
		Status:        frontString(front, "status"),
		Slug:          frontString(front, "slug"),
		Categories:    frontStrings(front, "categories"),
		Tags:          frontStrings(front, "tags"),
		FeaturedImage: frontString(front, "featuredImage"),
	}

	metaDesc := frontString(front, "metaDescription")
	keyword := frontString(front, "focusKeyword")
	if metaDesc != "" || keyword != "" {
		switch cfg.SEOPlugin {
		case config.PluginRankMath:
			input.SEO = &models.SEOData{
				Plugin:   config.PluginRankMath,
				RankMath: &models.RankMathFields{Description: metaDesc, FocusKeyword: keyword},
			}
		default:
			input.SEO = &models.SEOData{
				Plugin: config.PluginYoast,
				Yoast:  &models.YoastFields{MetaDescription: metaDesc, FocusKeyword: keyword},
			}
		}
	}
	return input
}

func frontString(front map[string]any, key string) string {
	if v, ok := front[key].(string); ok {
		return v
	}
	return ""
}

func frontStrings(front map[string]any, key string) []string {
	switch v := front[key].(type) {
	case string:
		return []string{v}
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func init() {
	postCmd.Flags().StringP("status", "s", "", "override post status (draft, publish, pending)")
	rootCmd.AddCommand(postCmd)
}
